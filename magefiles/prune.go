package main

import "github.com/magefile/mage/mg"

// Prune removes bundle keys no longer generated from the options database.
func Prune() error {
	mg.Deps(Build)
	return runCLI("prune")
}
