// Package sr implements the DICOM Structured Report content-tree model:
// coded concepts, the closed content-item variant set, containers, the
// per-family document type policy and the immutable document aggregate.
package sr

import "fmt"

// Coding scheme designators used throughout SR content
const (
	SchemeDCM  = "DCM"  // DICOM controlled terminology
	SchemeSRT  = "SRT"  // SNOMED RT
	SchemeUCUM = "UCUM" // Unified Code for Units of Measure
	SchemeLN   = "LN"   // LOINC

	// SchemeSectionHeading is the fixed private scheme under which
	// plain-string section headings are auto-coded by the builders.
	SchemeSectionHeading = "99SRSECT"
)

// CodedConcept is a (code value, coding scheme designator, code meaning)
// triple used as controlled vocabulary everywhere in SR content.
// It is an immutable value type with structural equality.
type CodedConcept struct {
	CodeValue              string
	CodingSchemeDesignator string
	CodeMeaning            string
}

// NewConcept creates a coded concept
func NewConcept(value, scheme, meaning string) CodedConcept {
	return CodedConcept{
		CodeValue:              value,
		CodingSchemeDesignator: scheme,
		CodeMeaning:            meaning,
	}
}

// Equals compares all three fields structurally
func (c CodedConcept) Equals(other CodedConcept) bool {
	return c.CodeValue == other.CodeValue &&
		c.CodingSchemeDesignator == other.CodingSchemeDesignator &&
		c.CodeMeaning == other.CodeMeaning
}

// Matches reports whether the concept answers to the given lookup string.
// The code meaning is matched first, with the code value as a fallback.
func (c CodedConcept) Matches(name string) bool {
	return c.CodeMeaning == name || c.CodeValue == name
}

// SameCodeAs reports whether two concepts carry the same code in the same
// scheme. The display meaning is ignored, since producers are free to vary
// it.
func (c CodedConcept) SameCodeAs(other CodedConcept) bool {
	return c.CodeValue == other.CodeValue &&
		c.CodingSchemeDesignator == other.CodingSchemeDesignator
}

// IsZero reports whether the concept has no fields set
func (c CodedConcept) IsZero() bool {
	return c == CodedConcept{}
}

// String returns the concept in (value, scheme, "meaning") form
func (c CodedConcept) String() string {
	return fmt.Sprintf("(%s, %s, %q)", c.CodeValue, c.CodingSchemeDesignator, c.CodeMeaning)
}
