// Package utils provides common utility functions for the catalog builder.
// It includes the slug synthesizer that turns localized display names into the
// stable identifiers used as cross-reference keys between catalogs.
package utils
