package main

import "github.com/magefile/mage/mg"

// Search looks a term up across the catalog, glossary, and bundle.
func Search(term string) error {
	mg.Deps(Build)
	return runCLI("search", term)
}
