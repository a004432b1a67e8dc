// Package manifest keeps package.json scripts in sync with document tasks.
package manifest

import (
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"go.trai.ch/mkdo/internal/core/domain"
	"go.trai.ch/mkdo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

const (
	scriptsKey = "scripts"
	selfScript = "mkdo"
)

// prettyOptions matches the layout npm writes: two-space indent and one
// array element per line.
var prettyOptions = &pretty.Options{Width: 0, Indent: "  "}

// Store edits package.json files in place.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// SyncScripts implements ports.ManifestStore.
//
// Existing keys keep their position; added keys are appended. Unrelated
// properties are left as they are.
func (s *Store) SyncScripts(path, command string, taskNames []string, dryRun bool) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "file", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "file", path)
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return false, zerr.With(domain.ErrManifestInvalid, "file", path)
	}

	updated, changed, err := syncScripts(data, command, taskNames)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "file", path)
	}

	if !changed || dryRun {
		return changed, nil
	}

	if err := os.WriteFile(path, pretty.PrettyOptions(updated, prettyOptions), info.Mode().Perm()); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "file", path)
	}
	return true, nil
}

func syncScripts(data []byte, command string, taskNames []string) ([]byte, bool, error) {
	changed := false

	if !gjson.GetBytes(data, scriptsKey).IsObject() {
		var err error
		if data, err = sjson.SetRawBytes(data, scriptsKey, []byte("{}")); err != nil {
			return nil, false, err
		}
		changed = true
	}

	want := make([][2]string, 0, len(taskNames)+1)
	want = append(want, [2]string{selfScript, command})
	for _, name := range taskNames {
		want = append(want, [2]string{name, command + " " + name})
	}

	for _, kv := range want {
		key := scriptsKey + "." + escapeKey(kv[0])

		current := gjson.GetBytes(data, key)
		if current.Type == gjson.String && current.Str == kv[1] {
			continue
		}

		var err error
		if data, err = sjson.SetBytes(data, key, kv[1]); err != nil {
			return nil, false, err
		}
		changed = true
	}

	return data, changed, nil
}

// escapeKey turns a task name into a single path component for gjson and sjson.
func escapeKey(name string) string {
	escaped := gjson.Escape(name)
	if strings.HasPrefix(escaped, ":") {
		escaped = `\` + escaped
	}
	return escaped
}
