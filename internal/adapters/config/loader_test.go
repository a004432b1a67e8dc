package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mkdo/internal/adapters/config"
	"go.trai.ch/mkdo/internal/core/domain"
	"go.trai.ch/mkdo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func intPtr(i int) *int { return &i }

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoader_Load_Sources(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    domain.Config
	}{
		{
			name:    "rc file as yaml",
			file:    config.RCFile,
			content: "file: README.md\nrootDepth: 2\nrootPattern: tasks\n",
			want:    domain.Config{File: "README.md", RootDepth: intPtr(2), RootPattern: "tasks"},
		},
		{
			name:    "rc json",
			file:    config.RCJSONFile,
			content: `{"taskSeparator": "/", "trace": true}`,
			want:    domain.Config{TaskSeparator: "/", Trace: true},
		},
		{
			name:    "rc yml",
			file:    config.RCYMLFile,
			content: "jsonLog: true\n",
			want:    domain.Config{JSONLog: true},
		},
		{
			name:    "config yaml",
			file:    config.ConfigYAML,
			content: "rootDepth: 0\n",
			want:    domain.Config{RootDepth: intPtr(0)},
		},
		{
			name:    "package.json property",
			file:    config.PackageJSON,
			content: `{"name": "app", "mkdo": {"file": "docs/tasks.md", "rootDepth": 3}}`,
			want:    domain.Config{File: "docs/tasks.md", RootDepth: intPtr(3)},
		},
		{
			name:    "empty rc file",
			file:    config.RCFile,
			content: "",
			want:    domain.Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := createFile(t, dir, tt.file, tt.content)
			loader, _ := newLoader(t)

			got, err := loader.Load(dir)
			require.NoError(t, err)

			want := tt.want
			want.Path = path
			assert.Equal(t, &want, got)
		})
	}
}

func TestLoader_Load_WalksUp(t *testing.T) {
	root := t.TempDir()
	path := createFile(t, root, config.RCYAMLFile, "rootPattern: \"Tasks*\"\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	loader, _ := newLoader(t)
	got, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, path, got.Path)
	assert.Equal(t, "Tasks*", got.RootPattern)
}

func TestLoader_Load_NearestDirectoryWins(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, config.RCFile, "file: outer.md\n")

	nested := filepath.Join(root, "pkg")
	require.NoError(t, os.Mkdir(nested, 0o750))
	createFile(t, nested, config.ConfigYML, "file: inner.md\n")

	loader, _ := newLoader(t)
	got, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, "inner.md", got.File)
}

func TestLoader_Load_PackageJSONPrecedesRC(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, config.PackageJSON, `{"mkdo": {"file": "from-package.md"}}`)
	createFile(t, dir, config.RCFile, "file: from-rc.md\n")

	loader, _ := newLoader(t)
	got, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-package.md", got.File)
}

func TestLoader_Load_PackageJSONWithoutPropertyIsSkipped(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, config.PackageJSON, `{"name": "app"}`)
	rc := createFile(t, dir, config.RCFile, "file: rc.md\n")

	loader, _ := newLoader(t)
	got, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, rc, got.Path)
}

func TestLoader_Load_PackageJSONNonObjectWarns(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, config.PackageJSON, `{"mkdo": "yes"}`)
	rc := createFile(t, dir, config.RCFile, "file: rc.md\n")

	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any())

	got, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, rc, got.Path)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "invalid yaml", file: config.RCFile, content: "rootDepth: [1\n"},
		{name: "wrong type", file: config.RCYAMLFile, content: "rootDepth: deep\n"},
		{name: "invalid package.json", file: config.PackageJSON, content: `{"mkdo": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			createFile(t, dir, tt.file, tt.content)
			loader, _ := newLoader(t)

			got, err := loader.Load(dir)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
		})
	}
}

func TestLoader_Load_DirectoryNamedLikeConfigIsSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, config.RCFile), 0o750))
	path := createFile(t, dir, config.RCJSONFile, `{"file": "x.md"}`)

	loader, _ := newLoader(t)
	got, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, path, got.Path)
}
