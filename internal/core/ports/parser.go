package ports

import "go.trai.ch/mkdo/internal/core/domain"

// DocumentParser turns document text into its top-level nodes.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type DocumentParser interface {
	// Parse returns the top-level nodes of source in document order.
	Parse(source []byte) ([]domain.Node, error)
}
