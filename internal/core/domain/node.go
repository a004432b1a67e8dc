package domain

// NodeKind identifies the variant of a document node.
type NodeKind int

const (
	// NodeOther is any node that is neither a heading nor a code block.
	NodeOther NodeKind = iota
	// NodeHeading is a heading node with a depth.
	NodeHeading
	// NodeCode is a fenced or indented code block.
	NodeCode
)

// String returns a readable name for the kind.
func (k NodeKind) String() string {
	switch k {
	case NodeHeading:
		return "heading"
	case NodeCode:
		return "code"
	default:
		return "other"
	}
}

// Node is a read-only view of one top-level node of a parsed document.
// The task extractor depends on documents only through this type, so any
// tree parser can feed it.
type Node struct {
	Kind NodeKind
	// Depth is the heading level (1 for "#"). Only set for headings.
	Depth int
	// Text is the plain-text rendering of the node's content.
	Text string
	// Language is the code block tag. Only set for code blocks.
	Language string
	// Value is the raw code block text. Only set for code blocks.
	Value string
}

// Heading returns a heading node.
func Heading(depth int, text string) Node {
	return Node{Kind: NodeHeading, Depth: depth, Text: text}
}

// CodeBlock returns a code block node.
func CodeBlock(language, value string) Node {
	return Node{Kind: NodeCode, Language: language, Value: value}
}

// Content returns a node that is neither a heading nor a code block.
func Content(text string) Node {
	return Node{Kind: NodeOther, Text: text}
}
