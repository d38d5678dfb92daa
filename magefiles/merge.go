package main

import "github.com/magefile/mage/mg"

// Merge folds a completed translation file into the l10n bundle.
func Merge(path string) error {
	mg.Deps(Build)
	return runCLI("merge", path)
}
