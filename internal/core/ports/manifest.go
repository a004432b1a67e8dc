package ports

// ManifestStore keeps the script aliases of a package manifest in sync with tasks.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestStore interface {
	// SyncScripts makes the manifest at path alias every task name to
	// "<command> <task>" and alias "mkdo" to command.
	// It reports whether the manifest was out of date. When dryRun is set the
	// manifest is left untouched.
	SyncScripts(path, command string, taskNames []string, dryRun bool) (bool, error)
}
