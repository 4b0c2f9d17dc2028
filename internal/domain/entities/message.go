package entities

import (
	"path/filepath"
	"strings"
)

const (
	// LocaleKey is the reserved key holding the document locale.
	LocaleKey = "@@locale"
	// DescriptionField is the metadata field every message must carry.
	DescriptionField = "description"

	metadataPrefix = "@"
)

// IsMetadataKey reports whether key belongs to the metadata namespace
// (this includes LocaleKey).
func IsMetadataKey(key string) bool {
	return strings.HasPrefix(key, metadataPrefix)
}

// MetadataKey returns the metadata key attached to a message key.
func MetadataKey(key string) string {
	return metadataPrefix + key
}

// AutoDescription is the description synthesized for a message lacking one.
func AutoDescription(key string) string {
	return "Auto-generated description for " + key + "."
}

// LocaleFromPath derives a locale from the file name: the part of the stem
// after the first underscore. "app_pt_BR.arb" yields "pt_BR". ok is false when
// the stem has no underscore or nothing follows it.
func LocaleFromPath(path string) (locale string, ok bool) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	_, locale, ok = strings.Cut(stem, "_")
	return locale, ok && locale != ""
}
