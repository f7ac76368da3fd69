// Package loader reads the indicator table and the governorate boundary
// file into in-memory collections. It has no side effects beyond reading
// the two input files.
package loader

import (
	"fmt"
	"strings"
)

// MissingFileError reports an input path that does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("loader: input file not found: %s", e.Path)
}

// MalformedDataError reports a schema violation in an input file: an absent
// required column or property, a non-numeric value where a number is
// expected, or a duplicate/empty governorate key.
type MalformedDataError struct {
	Path    string
	Reasons []string
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("loader: malformed data in %s: %s", e.Path, strings.Join(e.Reasons, "; "))
}
