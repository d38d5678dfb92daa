// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// LocalizationField identifies which half of a record a bundle key addresses.
type LocalizationField string

const (
	FieldName        LocalizationField = "name"
	FieldDescription LocalizationField = "description"
)

// Record is one configuration option entry parsed from the options database.
type Record struct {
	// Key is the option identifier as it appears in the source (e.g. "BasedOnStyle").
	Key string `json:"key" yaml:"key"`

	// Name is the option's display name in the source language.
	Name string `json:"name" yaml:"name"`

	// Description is the option's explanatory text in the source language.
	Description string `json:"description" yaml:"description"`
}

// NameKey returns the localization key for the record's display name,
// of the form <namespace>.option.<key>.name.
func (r Record) NameKey(namespace string) string {
	return namespace + ".option." + r.Key + ".name"
}

// DescriptionKey returns the localization key for the record's description,
// of the form <namespace>.option.<key>.description.
func (r Record) DescriptionKey(namespace string) string {
	return namespace + ".option." + r.Key + ".description"
}

// ParseLocalizationKey splits a bundle key of the form
// <namespace>.option.<key>.<field> into its option key and field.
// It reports false for keys outside the namespace and for fields other
// than name or description. Option keys may themselves contain dots;
// the field is always the segment after the last dot.
func ParseLocalizationKey(namespace, key string) (string, LocalizationField, bool) {
	rest, found := strings.CutPrefix(key, namespace+".option.")
	if !found {
		return "", "", false
	}
	idx := strings.LastIndex(rest, ".")
	if idx <= 0 {
		return "", "", false
	}
	optionKey, field := rest[:idx], LocalizationField(rest[idx+1:])
	if field != FieldName && field != FieldDescription {
		return "", "", false
	}
	return optionKey, field, true
}
