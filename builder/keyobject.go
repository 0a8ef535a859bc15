package builder

import (
	"github.com/raster-image/dicomsr/sr"
	"github.com/raster-image/dicomsr/types"
)

// KeyObject is one instance selected into a Key Object Selection
// document, with an optional free-text note about why it was selected.
type KeyObject struct {
	Ref         sr.SOPReference
	Description string
	// Frames restricts the selection to specific frames of a multi-frame
	// image; empty selects the whole instance.
	Frames []int
}

// KeyObjectSelectionBuilder assembles Key Object Selection documents: a
// coded document title naming the purpose of the selection and the
// selected instances. It is a persistent value like the generic builder.
type KeyObjectSelectionBuilder struct {
	base    Builder
	objects []KeyObject
}

// NewKeyObjectSelection creates a key object selection builder with the
// default "Of Interest" title.
func NewKeyObjectSelection() KeyObjectSelectionBuilder {
	return KeyObjectSelectionBuilder{
		base: New(sr.KeyObjectSelectionDocument).WithTitle(sr.ConceptOfInterest),
	}
}

// Apply runs a generic-builder transform against the underlying builder
func (b KeyObjectSelectionBuilder) Apply(fn func(Builder) Builder) KeyObjectSelectionBuilder {
	b.base = fn(b.base)
	return b
}

// WithPatientID sets the patient identifier
func (b KeyObjectSelectionBuilder) WithPatientID(id string) KeyObjectSelectionBuilder {
	b.base = b.base.WithPatientID(id)
	return b
}

// WithStudyInstanceUID sets the Study Instance UID
func (b KeyObjectSelectionBuilder) WithStudyInstanceUID(uid string) KeyObjectSelectionBuilder {
	b.base = b.base.WithStudyInstanceUID(uid)
	return b
}

// WithValidateOnBuild toggles structural validation at build time.
// Building an empty selection fails validation.
func (b KeyObjectSelectionBuilder) WithValidateOnBuild(enabled bool) KeyObjectSelectionBuilder {
	b.base = b.base.WithValidateOnBuild(enabled)
	return b
}

// WithDocumentTitle replaces the default title with one of the standard
// selection purposes (for teaching, for surgery, rejected for quality...).
func (b KeyObjectSelectionBuilder) WithDocumentTitle(title sr.CodedConcept) KeyObjectSelectionBuilder {
	b.base = b.base.WithTitle(title)
	return b
}

// AddKeyObject appends a selected instance. Selection order is the
// document order of the references.
func (b KeyObjectSelectionBuilder) AddKeyObject(object KeyObject) KeyObjectSelectionBuilder {
	b.objects = append(b.objects[:len(b.objects):len(b.objects)], object)
	return b
}

// Build merges the selection into the document structure and finishes
// through the generic build path.
func (b KeyObjectSelectionBuilder) Build() (*sr.SRDocument, error) {
	s := skeleton{
		templateID:      "2010",
		mappingResource: "DCMR",
		slots:           []slot{b.selectionSlot},
	}
	return b.base.buildWithRoot(s.assemble())
}

func (b KeyObjectSelectionBuilder) selectionSlot() []*sr.ContentItem {
	var items []*sr.ContentItem
	for _, object := range b.objects {
		if object.Description != "" {
			items = append(items, sr.NewTextItem(&sr.ConceptKeyObjectDescription, sr.RelationshipContains, object.Description))
		}
		items = append(items, object.referenceItem())
	}
	return items
}

// referenceItem picks the reference value type from the SOP class: SR
// documents are referenced as composites, waveform classes as waveforms,
// everything else as images.
func (o KeyObject) referenceItem() *sr.ContentItem {
	switch {
	case types.IsSRStorage(o.Ref.SOPClassUID):
		return sr.NewCompositeItem(nil, sr.RelationshipContains, o.Ref)
	case types.IsWaveformStorage(o.Ref.SOPClassUID):
		return sr.NewWaveformItem(nil, sr.RelationshipContains, o.Ref, nil)
	default:
		return sr.NewImageItem(nil, sr.RelationshipContains, o.Ref, o.Frames)
	}
}
