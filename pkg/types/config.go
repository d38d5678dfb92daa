package types

// ExtractConfig holds settings for the extract stage.
type ExtractConfig struct {
	// DatabasePath is the TypeScript options database file to scan.
	DatabasePath string `json:"database_path" yaml:"database_path"`

	// Namespace prefixes every generated localization key (default "clangFormat").
	Namespace string `json:"namespace" yaml:"namespace"`

	// GlossaryPath is an optional terminology glossary folded into the
	// translation prompt. Empty disables the glossary section.
	GlossaryPath string `json:"glossary_path,omitempty" yaml:"glossary_path,omitempty"`
}

// CatalogConfig holds settings for the translation catalog.
type CatalogConfig struct {
	// Path is the SQLite database file (default "l10n/catalog.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// SearchConfig holds settings for the search command.
type SearchConfig struct {
	// CatalogPath is the translation catalog database. Empty, or a path
	// that does not exist yet, disables the catalog source.
	CatalogPath string `json:"catalog_path" yaml:"catalog_path"`

	// GlossaryPath is the terminology glossary. Empty disables the glossary source.
	GlossaryPath string `json:"glossary_path,omitempty" yaml:"glossary_path,omitempty"`

	// BundlePath is the l10n bundle file. Empty, or a path that does not
	// exist yet, disables the bundle source.
	BundlePath string `json:"bundle_path" yaml:"bundle_path"`

	// Namespace scopes the bundle keys considered by the bundle source.
	Namespace string `json:"namespace" yaml:"namespace"`

	// MaxResults caps the merged result list (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
