package main

import "github.com/magefile/mage/mg"

// Extract scans the options database and prints the translation prompt.
func Extract() error {
	mg.Deps(Build)
	return runCLI("extract")
}
