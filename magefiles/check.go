package main

import "github.com/magefile/mage/mg"

// Check reports bundle keys that still await translation.
func Check() error {
	mg.Deps(Build)
	return runCLI("check")
}
