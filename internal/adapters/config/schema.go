package config

import "go.trai.ch/mkdo/internal/core/domain"

// Names of the configuration sources, in the order they are tried in each directory.
const (
	PackageJSON = "package.json"
	PackageKey  = "mkdo"
	RCFile      = ".mkdorc"
	RCJSONFile  = ".mkdorc.json"
	RCYAMLFile  = ".mkdorc.yaml"
	RCYMLFile   = ".mkdorc.yml"
	ConfigYAML  = "mkdo.config.yaml"
	ConfigYML   = "mkdo.config.yml"
)

// searchPlaces lists the file names checked in every directory.
var searchPlaces = []string{
	PackageJSON,
	RCFile,
	RCJSONFile,
	RCYAMLFile,
	RCYMLFile,
	ConfigYAML,
	ConfigYML,
}

// Mkdofile is the on-disk shape of an mkdo configuration.
// JSON sources decode through the same YAML tags.
type Mkdofile struct {
	File          string `yaml:"file"`
	RootDepth     *int   `yaml:"rootDepth"`
	RootPattern   string `yaml:"rootPattern"`
	TaskSeparator string `yaml:"taskSeparator"`
	JSONLog       bool   `yaml:"jsonLog"`
	Trace         bool   `yaml:"trace"`
}

func (m *Mkdofile) toDomain(path string) *domain.Config {
	return &domain.Config{
		Path:          path,
		File:          m.File,
		RootDepth:     m.RootDepth,
		RootPattern:   m.RootPattern,
		TaskSeparator: m.TaskSeparator,
		JSONLog:       m.JSONLog,
		Trace:         m.Trace,
	}
}
