package extract

import (
	srerrors "github.com/raster-image/dicomsr/errors"
	"github.com/raster-image/dicomsr/sr"
)

// KeyObject is one selected instance, in document order
type KeyObject struct {
	Ref sr.SOPReference
	// ValueType records how the instance was referenced (IMAGE,
	// WAVEFORM or COMPOSITE).
	ValueType sr.ValueType
	Frames    []int
	Channels  []int
	// Description is the free-text note immediately preceding the
	// reference, when present.
	Description string
}

// KeyObjects is the selection view of a Key Object Selection document
type KeyObjects struct {
	Title   *sr.CodedConcept
	Objects []KeyObject
}

// InstanceUIDs returns the selected SOP Instance UIDs in selection order
func (k *KeyObjects) InstanceUIDs() []string {
	uids := make([]string, len(k.Objects))
	for i, object := range k.Objects {
		uids[i] = object.Ref.SOPInstanceUID
	}
	return uids
}

// NewKeyObjects projects a Key Object Selection document into the
// selection view. A selection without any referenced instances is
// structurally invalid.
func NewKeyObjects(doc *sr.SRDocument) (*KeyObjects, error) {
	if doc.DocumentType() != sr.KeyObjectSelectionDocument {
		return nil, srerrors.NewExtractionError(
			"KeyObjects",
			"KeyObjectSelectionDocument",
			doc.DocumentType().String(),
			srerrors.ErrInvalidDocumentType,
		)
	}

	view := &KeyObjects{Title: doc.Title()}
	pendingDescription := ""

	for _, item := range doc.Root().Children {
		switch item.ValueType() {
		case sr.ValueTypeText:
			if concept := item.ConceptName(); concept != nil && concept.SameCodeAs(sr.ConceptKeyObjectDescription) {
				text, _ := item.AsText()
				pendingDescription = text.Text
			}
		case sr.ValueTypeImage:
			image, _ := item.AsImage()
			view.Objects = append(view.Objects, KeyObject{
				Ref:         image.Ref,
				ValueType:   sr.ValueTypeImage,
				Frames:      image.Frames,
				Description: pendingDescription,
			})
			pendingDescription = ""
		case sr.ValueTypeWaveform:
			waveform, _ := item.AsWaveform()
			view.Objects = append(view.Objects, KeyObject{
				Ref:         waveform.Ref,
				ValueType:   sr.ValueTypeWaveform,
				Channels:    waveform.Channels,
				Description: pendingDescription,
			})
			pendingDescription = ""
		case sr.ValueTypeComposite:
			composite, _ := item.AsComposite()
			view.Objects = append(view.Objects, KeyObject{
				Ref:         composite.Ref,
				ValueType:   sr.ValueTypeComposite,
				Description: pendingDescription,
			})
			pendingDescription = ""
		}
	}

	if len(view.Objects) == 0 {
		return nil, srerrors.NewExtractionError(
			"KeyObjects",
			"at least one referenced instance",
			"none",
			srerrors.ErrInvalidStructure,
		)
	}
	return view, nil
}
