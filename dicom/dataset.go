// Package dicom provides the generic data-set view that the SR core is
// built on: an ordered collection of elements with scalar and sequence
// lookup by tag. The binary tag/VR/transfer-syntax codec underneath this
// view is owned by an external collaborator and is deliberately absent.
package dicom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raster-image/dicomsr/interfaces"
	"github.com/raster-image/dicomsr/types"
)

// Element represents a DICOM data element
type Element struct {
	Tag   types.Tag
	VR    string
	Value interface{}
}

// Dataset represents an ordered collection of DICOM elements.
//
// Elements are indexed by tag for lookup but iteration follows insertion
// order, which keeps encoded sequence items deterministic.
type Dataset struct {
	elements map[types.Tag]*Element
	order    []types.Tag
}

// NewDataset creates a new empty dataset
func NewDataset() *Dataset {
	return &Dataset{
		elements: make(map[types.Tag]*Element),
	}
}

// SetElement adds or replaces an element in the dataset
func (d *Dataset) SetElement(tag types.Tag, vr string, value interface{}) {
	if _, exists := d.elements[tag]; !exists {
		d.order = append(d.order, tag)
	}
	d.elements[tag] = &Element{Tag: tag, VR: vr, Value: value}
}

// GetElement returns an element by tag
func (d *Dataset) GetElement(tag types.Tag) (*Element, bool) {
	element, exists := d.elements[tag]
	return element, exists
}

// Has returns true if the dataset contains an element for the tag
func (d *Dataset) Has(tag types.Tag) bool {
	_, exists := d.elements[tag]
	return exists
}

// Len returns the number of elements in the dataset
func (d *Dataset) Len() int {
	return len(d.elements)
}

// Tags returns the element tags in insertion order
func (d *Dataset) Tags() []types.Tag {
	tags := make([]types.Tag, len(d.order))
	copy(tags, d.order)
	return tags
}

// SetString stores a single string value for a tag
func (d *Dataset) SetString(tag types.Tag, vr string, value string) {
	d.SetElement(tag, vr, value)
}

// SetStrings stores a multi-valued string element for a tag
func (d *Dataset) SetStrings(tag types.Tag, vr string, values []string) {
	d.SetElement(tag, vr, values)
}

// SetInt stores an integer value for a tag
func (d *Dataset) SetInt(tag types.Tag, vr string, value int) {
	d.SetElement(tag, vr, value)
}

// SetInts stores a multi-valued integer element for a tag
func (d *Dataset) SetInts(tag types.Tag, vr string, values []int) {
	d.SetElement(tag, vr, values)
}

// SetFloats stores a multi-valued floating point element for a tag
func (d *Dataset) SetFloats(tag types.Tag, vr string, values []float64) {
	d.SetElement(tag, vr, values)
}

// SetSequence stores a sequence of nested datasets for a tag
func (d *Dataset) SetSequence(tag types.Tag, items []*Dataset) {
	d.SetElement(tag, types.VR_SQ, items)
}

// GetString returns a string value for a tag
func (d *Dataset) GetString(tag types.Tag) string {
	element, exists := d.elements[tag]
	if !exists {
		return ""
	}
	switch v := element.Value.(type) {
	case string:
		return strings.TrimSpace(v)
	case []string:
		if len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// GetStrings returns a slice of string values for a tag
func (d *Dataset) GetStrings(tag types.Tag) []string {
	element, exists := d.elements[tag]
	if !exists {
		return nil
	}
	switch v := element.Value.(type) {
	case string:
		// Split by backslash for multiple values
		parts := strings.Split(v, "\\")
		result := make([]string, len(parts))
		for i, part := range parts {
			result[i] = strings.TrimSpace(part)
		}
		return result
	case []string:
		return v
	}
	return nil
}

// GetInt returns an integer value for a tag, or 0 when absent or malformed
func (d *Dataset) GetInt(tag types.Tag) int {
	element, exists := d.elements[tag]
	if !exists {
		return 0
	}
	switch v := element.Value.(type) {
	case int:
		return v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// GetInts returns a slice of integer values for a tag
func (d *Dataset) GetInts(tag types.Tag) []int {
	element, exists := d.elements[tag]
	if !exists {
		return nil
	}
	switch v := element.Value.(type) {
	case []int:
		return v
	case int:
		return []int{v}
	case []string:
		result := make([]int, 0, len(v))
		for _, s := range v {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				continue
			}
			result = append(result, n)
		}
		return result
	}
	return nil
}

// GetFloat returns the first floating point value for a tag
func (d *Dataset) GetFloat(tag types.Tag) (float64, bool) {
	values := d.GetFloats(tag)
	if len(values) == 0 {
		return 0, false
	}
	return values[0], true
}

// GetFloats returns a slice of floating point values for a tag
func (d *Dataset) GetFloats(tag types.Tag) []float64 {
	element, exists := d.elements[tag]
	if !exists {
		return nil
	}
	switch v := element.Value.(type) {
	case []float64:
		return v
	case float64:
		return []float64{v}
	case string:
		parts := strings.Split(v, "\\")
		result := make([]float64, 0, len(parts))
		for _, part := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				continue
			}
			result = append(result, f)
		}
		return result
	case []string:
		result := make([]float64, 0, len(v))
		for _, s := range v {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				continue
			}
			result = append(result, f)
		}
		return result
	}
	return nil
}

// GetSequence returns the nested datasets stored under a sequence tag
func (d *Dataset) GetSequence(tag types.Tag) []*Dataset {
	element, exists := d.elements[tag]
	if !exists {
		return nil
	}
	if items, ok := element.Value.([]*Dataset); ok {
		return items
	}
	return nil
}

// Sequence returns the sequence items behind the interfaces.DataView
// contract consumed by the parser.
func (d *Dataset) Sequence(tag types.Tag) []interfaces.DataView {
	items := d.GetSequence(tag)
	if items == nil {
		return nil
	}
	views := make([]interfaces.DataView, len(items))
	for i, item := range items {
		views[i] = item
	}
	return views
}

// String returns a short human-readable summary of the dataset
func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset(%d elements)", len(d.elements))
}

var _ interfaces.DataView = (*Dataset)(nil)
