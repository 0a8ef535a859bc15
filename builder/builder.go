// Package builder assembles SR documents. Builders are persistent
// immutable values: every mutating-looking call returns a new builder and
// never touches the receiver, so two chains sharing a common prefix never
// observe each other's later calls.
package builder

import (
	"strings"
	"time"

	"github.com/raster-image/dicomsr/sr"
)

// Builder accumulates header metadata and an ordered list of content
// items for any of the five SR document families.
type Builder struct {
	docType         sr.DocumentType
	validateOnBuild bool
	sopClassUID     string // overrides the family default when non-empty
	header          sr.DocumentHeader
	frameOfRefUID   string
	items           []*sr.ContentItem
}

// New creates a builder for the given document family. Validation on
// build is enabled by default.
func New(docType sr.DocumentType) Builder {
	return Builder{docType: docType, validateOnBuild: true}
}

// WithValidateOnBuild toggles structural validation at build time.
// Disabling it allows deliberately malformed trees to be built.
func (b Builder) WithValidateOnBuild(enabled bool) Builder {
	b.validateOnBuild = enabled
	return b
}

// WithSOPInstanceUID sets the SOP Instance UID; left unset, a fresh UID
// is generated at build time.
func (b Builder) WithSOPInstanceUID(uid string) Builder {
	b.header.SOPInstanceUID = uid
	return b
}

// WithStudyInstanceUID sets the Study Instance UID
func (b Builder) WithStudyInstanceUID(uid string) Builder {
	b.header.StudyInstanceUID = uid
	return b
}

// WithSeriesInstanceUID sets the Series Instance UID
func (b Builder) WithSeriesInstanceUID(uid string) Builder {
	b.header.SeriesInstanceUID = uid
	return b
}

// WithInstanceNumber sets the instance number
func (b Builder) WithInstanceNumber(n int) Builder {
	b.header.InstanceNumber = n
	return b
}

// WithSeriesNumber sets the series number
func (b Builder) WithSeriesNumber(n int) Builder {
	b.header.SeriesNumber = n
	return b
}

// WithPatientID sets the patient identifier
func (b Builder) WithPatientID(id string) Builder {
	b.header.PatientID = id
	return b
}

// WithPatientName sets the patient name (DICOM PN form)
func (b Builder) WithPatientName(name string) Builder {
	b.header.PatientName = name
	return b
}

// WithPatientBirthDate sets the patient birth date (YYYYMMDD)
func (b Builder) WithPatientBirthDate(date string) Builder {
	b.header.PatientBirthDate = date
	return b
}

// WithPatientSex sets the patient sex code
func (b Builder) WithPatientSex(sex string) Builder {
	b.header.PatientSex = sex
	return b
}

// WithStudyDate sets the study date (YYYYMMDD)
func (b Builder) WithStudyDate(date string) Builder {
	b.header.StudyDate = date
	return b
}

// WithStudyTime sets the study time (HHMMSS)
func (b Builder) WithStudyTime(tm string) Builder {
	b.header.StudyTime = tm
	return b
}

// WithStudyID sets the study ID
func (b Builder) WithStudyID(id string) Builder {
	b.header.StudyID = id
	return b
}

// WithAccessionNumber sets the accession number
func (b Builder) WithAccessionNumber(number string) Builder {
	b.header.AccessionNumber = number
	return b
}

// WithStudyDescription sets the study description
func (b Builder) WithStudyDescription(description string) Builder {
	b.header.StudyDescription = description
	return b
}

// WithSeriesDescription sets the series description
func (b Builder) WithSeriesDescription(description string) Builder {
	b.header.SeriesDescription = description
	return b
}

// WithReferringPhysicianName sets the referring physician name
func (b Builder) WithReferringPhysicianName(name string) Builder {
	b.header.ReferringPhysicianName = name
	return b
}

// WithManufacturer sets the equipment manufacturer
func (b Builder) WithManufacturer(name string) Builder {
	b.header.Manufacturer = name
	return b
}

// WithTitle sets the document title concept, which becomes the concept
// name of the root container.
func (b Builder) WithTitle(title sr.CodedConcept) Builder {
	b.header.Title = &title
	return b
}

// WithCompletionFlag sets the completion flag (COMPLETE or PARTIAL)
func (b Builder) WithCompletionFlag(flag string) Builder {
	b.header.CompletionFlag = flag
	return b
}

// WithVerificationFlag sets the verification flag
func (b Builder) WithVerificationFlag(flag string) Builder {
	b.header.VerificationFlag = flag
	return b
}

// WithPreliminaryFlag sets the preliminary flag (PRELIMINARY or FINAL)
func (b Builder) WithPreliminaryFlag(flag string) Builder {
	b.header.PreliminaryFlag = flag
	return b
}

// WithContentDate sets the content date (YYYYMMDD)
func (b Builder) WithContentDate(date string) Builder {
	b.header.ContentDate = date
	return b
}

// WithContentTime sets the content time (HHMMSS)
func (b Builder) WithContentTime(tm string) Builder {
	b.header.ContentTime = tm
	return b
}

// WithFrameOfReferenceUID sets the builder-level default frame of
// reference for 3D coordinate items that carry none of their own.
func (b Builder) WithFrameOfReferenceUID(uid string) Builder {
	b.frameOfRefUID = uid
	return b
}

// withSOPClassUID overrides the family's storage SOP class. Used by the
// CAD builders, whose documents carry their own storage classes while
// following the Comprehensive SR content rules.
func (b Builder) withSOPClassUID(uid string) Builder {
	b.sopClassUID = uid
	return b
}

// AddItem appends a prebuilt content item as a top-level child of the
// root container.
func (b Builder) AddItem(item *sr.ContentItem) Builder {
	// Full-slice expression forces append to copy, keeping earlier
	// builder values independent of this one.
	b.items = append(b.items[:len(b.items):len(b.items)], item)
	return b
}

// AddText appends a TEXT item with the default CONTAINS relationship
func (b Builder) AddText(concept sr.CodedConcept, text string) Builder {
	return b.AddItem(sr.NewTextItem(&concept, sr.RelationshipContains, text))
}

// AddCode appends a CODE item
func (b Builder) AddCode(concept sr.CodedConcept, code sr.CodedConcept) Builder {
	return b.AddItem(sr.NewCodeItem(&concept, sr.RelationshipContains, code))
}

// AddNumeric appends a NUM item with optional units
func (b Builder) AddNumeric(concept sr.CodedConcept, value float64, units *sr.CodedConcept) Builder {
	return b.AddItem(sr.NewNumericItem(&concept, sr.RelationshipContains, value, units))
}

// AddDate appends a DATE item
func (b Builder) AddDate(concept sr.CodedConcept, date string) Builder {
	return b.AddItem(sr.NewDateItem(&concept, sr.RelationshipContains, date))
}

// AddTime appends a TIME item
func (b Builder) AddTime(concept sr.CodedConcept, tm string) Builder {
	return b.AddItem(sr.NewTimeItem(&concept, sr.RelationshipContains, tm))
}

// AddDateTime appends a DATETIME item
func (b Builder) AddDateTime(concept sr.CodedConcept, dt string) Builder {
	return b.AddItem(sr.NewDateTimeItem(&concept, sr.RelationshipContains, dt))
}

// AddPersonName appends a PNAME item
func (b Builder) AddPersonName(concept sr.CodedConcept, name string) Builder {
	return b.AddItem(sr.NewPersonNameItem(&concept, sr.RelationshipContains, name))
}

// AddUIDRef appends a UIDREF item
func (b Builder) AddUIDRef(concept sr.CodedConcept, uid string) Builder {
	return b.AddItem(sr.NewUIDRefItem(&concept, sr.RelationshipContains, uid))
}

// AddImageReference appends an IMAGE item
func (b Builder) AddImageReference(ref sr.SOPReference, frames ...int) Builder {
	return b.AddItem(sr.NewImageItem(nil, sr.RelationshipContains, ref, frames))
}

// AddCompositeReference appends a COMPOSITE item
func (b Builder) AddCompositeReference(ref sr.SOPReference) Builder {
	return b.AddItem(sr.NewCompositeItem(nil, sr.RelationshipContains, ref))
}

// AddWaveformReference appends a WAVEFORM item
func (b Builder) AddWaveformReference(ref sr.SOPReference, channels ...int) Builder {
	return b.AddItem(sr.NewWaveformItem(nil, sr.RelationshipContains, ref, channels))
}

// AddSCoord appends a 2D spatial coordinates item
func (b Builder) AddSCoord(concept sr.CodedConcept, graphicType sr.GraphicType, data []float64, imageRef *sr.SOPReference) Builder {
	return b.AddItem(sr.NewSCoordItem(&concept, sr.RelationshipContains, graphicType, data, imageRef))
}

// AddSCoord3D appends a 3D spatial coordinates item with an explicit
// frame of reference.
func (b Builder) AddSCoord3D(concept sr.CodedConcept, graphicType sr.GraphicType3D, data []float64, frameOfReferenceUID string) Builder {
	return b.AddItem(sr.NewSCoord3DItem(&concept, sr.RelationshipContains, graphicType, data, frameOfReferenceUID))
}

// AddPoint3D appends a 3D point without its own frame of reference; the
// builder-level default is substituted at build time. Building without a
// default raises the missing-frame-of-reference error under validation.
func (b Builder) AddPoint3D(concept sr.CodedConcept, x, y, z float64) Builder {
	return b.AddItem(sr.NewSCoord3DItem(&concept, sr.RelationshipContains, sr.GraphicType3DPoint, []float64{x, y, z}, ""))
}

// AddPoint3DInFrame appends a 3D point with a per-item frame of
// reference that takes precedence over the builder-level default.
func (b Builder) AddPoint3DInFrame(concept sr.CodedConcept, x, y, z float64, frameOfReferenceUID string) Builder {
	return b.AddItem(sr.NewSCoord3DItem(&concept, sr.RelationshipContains, sr.GraphicType3DPoint, []float64{x, y, z}, frameOfReferenceUID))
}

// AddSection wraps the given items in a container headed by the title
// string, auto-coded under the fixed section-heading scheme.
func (b Builder) AddSection(title string, items ...*sr.ContentItem) Builder {
	concept := SectionConcept(title)
	return b.AddItem(sr.NewContainerItem(&concept, sr.RelationshipContains, items))
}

// AddSectionConcept wraps the given items in a container headed by an
// explicit concept.
func (b Builder) AddSectionConcept(heading sr.CodedConcept, items ...*sr.ContentItem) Builder {
	return b.AddItem(sr.NewContainerItem(&heading, sr.RelationshipContains, items))
}

// AddSectionFunc wraps the items produced by the callback in a container
// headed by the title string.
func (b Builder) AddSectionFunc(title string, build func() []*sr.ContentItem) Builder {
	return b.AddSection(title, build()...)
}

// AddFindings appends a "Findings" section holding one TEXT item
func (b Builder) AddFindings(text string) Builder {
	return b.AddSection("Findings", sr.NewTextItem(&sr.ConceptFinding, sr.RelationshipContains, text))
}

// AddImpression appends an "Impression" section holding one TEXT item
func (b Builder) AddImpression(text string) Builder {
	return b.AddSection("Impression", sr.NewTextItem(&sr.ConceptImpression, sr.RelationshipContains, text))
}

// Build assembles the accumulated content into an immutable document:
// unset UIDs are filled with freshly generated values, default flags are
// applied, frame-of-reference defaults are resolved, and the tree is
// validated against the family policy unless validation is disabled. On
// validation failure no document is produced.
func (b Builder) Build() (*sr.SRDocument, error) {
	return b.buildWithRoot(sr.ContainerValue{Children: b.items})
}

// buildWithRoot finishes a build from an assembled root payload. The
// specialized builders call it with their template-merged trees.
func (b Builder) buildWithRoot(root sr.ContainerValue) (*sr.SRDocument, error) {
	header := b.header
	header.SOPClassUID = b.docType.SOPClassUID()
	if b.sopClassUID != "" {
		header.SOPClassUID = b.sopClassUID
	}
	if header.SOPInstanceUID == "" {
		header.SOPInstanceUID = sr.NewUID()
	}
	if header.StudyInstanceUID == "" {
		header.StudyInstanceUID = sr.NewUID()
	}
	if header.SeriesInstanceUID == "" {
		header.SeriesInstanceUID = sr.NewUID()
	}
	if header.InstanceNumber == 0 {
		header.InstanceNumber = 1
	}
	if header.SeriesNumber == 0 {
		header.SeriesNumber = 1
	}
	if header.CompletionFlag == "" {
		header.CompletionFlag = b.docType.DefaultCompletionFlag()
	}
	if header.VerificationFlag == "" {
		header.VerificationFlag = b.docType.DefaultVerificationFlag()
	}
	now := time.Now()
	if header.ContentDate == "" {
		header.ContentDate = now.Format("20060102")
	}
	if header.ContentTime == "" {
		header.ContentTime = now.Format("150405")
	}

	root.Children = resolveFrameDefaults(root.Children, b.frameOfRefUID)

	if b.validateOnBuild {
		if err := sr.Validate(b.docType, root); err != nil {
			return nil, err
		}
	}
	return sr.NewDocument(b.docType, header, root), nil
}

// resolveFrameDefaults rebuilds the tree substituting the builder-level
// frame of reference into SCOORD3D items that carry none. Items are
// immutable, so changed nodes are recreated rather than patched.
func resolveFrameDefaults(items []*sr.ContentItem, defaultUID string) []*sr.ContentItem {
	if defaultUID == "" {
		return items
	}
	result := make([]*sr.ContentItem, len(items))
	for i, item := range items {
		switch {
		case item.ValueType() == sr.ValueTypeSCoord3D:
			sc, _ := item.AsSCoord3D()
			if sc.FrameOfReferenceUID == "" {
				sc.FrameOfReferenceUID = defaultUID
				result[i] = sr.NewContentItem(item.ConceptName(), item.Relationship(), sc)
				continue
			}
			result[i] = item
		case item.ValueType() == sr.ValueTypeContainer:
			container, _ := item.AsContainer()
			container.Children = resolveFrameDefaults(container.Children, defaultUID)
			result[i] = sr.NewContainerItemValue(item.ConceptName(), item.Relationship(), container)
		default:
			result[i] = item
		}
	}
	return result
}

// SectionConcept auto-codes a section heading string under the fixed
// section-heading scheme: the meaning is the string itself, the code
// value its upper-cased, underscore-joined form.
func SectionConcept(title string) sr.CodedConcept {
	code := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(title), " ", "_"))
	return sr.NewConcept(code, sr.SchemeSectionHeading, title)
}
