package main

import "github.com/magefile/mage/mg"

// Store indexes the options database and bundle into the local catalog.
func Store() error {
	mg.Deps(Build)
	return runCLI("catalog", "store")
}
