// Package setup provides business logic for installing converted workflow
// templates into platform directory layouts.
//
// This package contains the on-disk collaborators the conversion engine
// stays unaware of: directory creation, settings-file deep merge, and
// .gitignore bookkeeping. Command-layer adapters in cmd/portage/ handle CLI
// concerns (flags, output formatting, cobra wiring) and delegate to this
// package for the actual work.
//
// # Installation
//
//	path, err := setup.Install(root, catalog.PlatformWindsurf, "deploy", content)
//
// # Settings Merge
//
// Some platforms keep a JSON settings file that portage must extend rather
// than overwrite. MergeSettingsFile folds new keys into the existing file
// without dropping anything already there:
//
//	err := setup.MergeSettingsFile(path, map[string]any{...})
//
// # Gitignore
//
// Installed platform directories can be kept out of version control with a
// managed marker section that install adds and uninstall removes.
package setup
