// Package interfaces contains the contracts between the SR core and its
// data-layer collaborators.
package interfaces

import "github.com/raster-image/dicomsr/types"

// DataView is the generic read-only view of a DICOM data set that the SR
// parser consumes: scalar field lookup by tag and sequence lookup by tag,
// recursively. The concrete implementation lives in the dicom package; a
// binary codec supplying its own view only needs to satisfy this interface.
type DataView interface {
	// Has reports whether the view contains an element for the tag.
	Has(tag types.Tag) bool

	// GetString returns the first string value for the tag, or "".
	GetString(tag types.Tag) string

	// GetStrings returns all string values for the tag.
	GetStrings(tag types.Tag) []string

	// GetInt returns the first integer value for the tag, or 0.
	GetInt(tag types.Tag) int

	// GetInts returns all integer values for the tag.
	GetInts(tag types.Tag) []int

	// GetFloat returns the first floating point value for the tag.
	GetFloat(tag types.Tag) (float64, bool)

	// GetFloats returns all floating point values for the tag.
	GetFloats(tag types.Tag) []float64

	// Sequence returns the ordered nested items under a sequence tag.
	Sequence(tag types.Tag) []DataView
}
