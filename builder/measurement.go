package builder

import "github.com/raster-image/dicomsr/sr"

// MeasurementGroup collects one tracked measurement series: its tracking
// identification, the finding it quantifies, and the measurement and
// evaluation items themselves.
type MeasurementGroup struct {
	TrackingIdentifier string
	TrackingUID        string
	FindingType        *sr.CodedConcept
	FindingSite        *sr.CodedConcept
	Items              []*sr.ContentItem
}

// MeasurementReportBuilder assembles an Imaging Measurement Report: a
// language observation context, the reported procedures, an optional
// image library, and measurement groups, merged into the mandated
// document structure at build time. Like the generic builder it is a
// persistent value.
type MeasurementReportBuilder struct {
	base       Builder
	language   *sr.CodedConcept
	procedures []sr.CodedConcept
	library    []*sr.ContentItem
	groups     []MeasurementGroup
}

// NewMeasurementReport creates a measurement report builder on the
// Enhanced SR family with the standard report title.
func NewMeasurementReport() MeasurementReportBuilder {
	return MeasurementReportBuilder{
		base: New(sr.EnhancedSR).WithTitle(sr.ConceptImagingMeasurementReport),
	}
}

// Apply runs a generic-builder transform against the underlying builder,
// giving access to every header setter without mirroring them all here.
func (b MeasurementReportBuilder) Apply(fn func(Builder) Builder) MeasurementReportBuilder {
	b.base = fn(b.base)
	return b
}

// WithPatientID sets the patient identifier
func (b MeasurementReportBuilder) WithPatientID(id string) MeasurementReportBuilder {
	b.base = b.base.WithPatientID(id)
	return b
}

// WithPatientName sets the patient name (DICOM PN form)
func (b MeasurementReportBuilder) WithPatientName(name string) MeasurementReportBuilder {
	b.base = b.base.WithPatientName(name)
	return b
}

// WithStudyInstanceUID sets the Study Instance UID
func (b MeasurementReportBuilder) WithStudyInstanceUID(uid string) MeasurementReportBuilder {
	b.base = b.base.WithStudyInstanceUID(uid)
	return b
}

// WithValidateOnBuild toggles structural validation at build time
func (b MeasurementReportBuilder) WithValidateOnBuild(enabled bool) MeasurementReportBuilder {
	b.base = b.base.WithValidateOnBuild(enabled)
	return b
}

// WithLanguage sets the language of content observation context, emitted
// ahead of all report content.
func (b MeasurementReportBuilder) WithLanguage(language sr.CodedConcept) MeasurementReportBuilder {
	b.language = &language
	return b
}

// AddProcedureReported records a procedure the report covers
func (b MeasurementReportBuilder) AddProcedureReported(procedure sr.CodedConcept) MeasurementReportBuilder {
	b.procedures = append(b.procedures[:len(b.procedures):len(b.procedures)], procedure)
	return b
}

// AddImageLibraryEntry records a source image in the report's image
// library section.
func (b MeasurementReportBuilder) AddImageLibraryEntry(ref sr.SOPReference, frames ...int) MeasurementReportBuilder {
	item := sr.NewImageItem(nil, sr.RelationshipContains, ref, frames)
	b.library = append(b.library[:len(b.library):len(b.library)], item)
	return b
}

// AddMeasurementGroup appends a measurement group to the Imaging
// Measurements section.
func (b MeasurementReportBuilder) AddMeasurementGroup(group MeasurementGroup) MeasurementReportBuilder {
	b.groups = append(b.groups[:len(b.groups):len(b.groups)], group)
	return b
}

// Build merges the accumulated content into the measurement report
// structure and finishes the document through the generic build path.
func (b MeasurementReportBuilder) Build() (*sr.SRDocument, error) {
	s := skeleton{
		templateID:      "1500",
		mappingResource: "DCMR",
		slots: []slot{
			b.languageSlot,
			b.procedureSlot,
			b.librarySlot,
			b.measurementsSlot,
		},
	}
	return b.base.buildWithRoot(s.assemble())
}

func (b MeasurementReportBuilder) languageSlot() []*sr.ContentItem {
	if b.language == nil {
		return nil
	}
	return []*sr.ContentItem{
		sr.NewCodeItem(&sr.ConceptLanguageOfContent, sr.RelationshipHasObsContext, *b.language),
	}
}

func (b MeasurementReportBuilder) procedureSlot() []*sr.ContentItem {
	items := make([]*sr.ContentItem, 0, len(b.procedures))
	for _, procedure := range b.procedures {
		items = append(items, sr.NewCodeItem(&sr.ConceptProcedureReported, sr.RelationshipHasObsContext, procedure))
	}
	return items
}

func (b MeasurementReportBuilder) librarySlot() []*sr.ContentItem {
	if len(b.library) == 0 {
		return nil
	}
	return []*sr.ContentItem{
		sr.NewContainerItem(&sr.ConceptImageLibrary, sr.RelationshipContains, b.library),
	}
}

func (b MeasurementReportBuilder) measurementsSlot() []*sr.ContentItem {
	if len(b.groups) == 0 {
		return nil
	}
	groups := make([]*sr.ContentItem, 0, len(b.groups))
	for _, group := range b.groups {
		groups = append(groups, group.item())
	}
	return []*sr.ContentItem{
		sr.NewContainerItem(&sr.ConceptImagingMeasurements, sr.RelationshipContains, groups),
	}
}

// item renders the group as a Measurement Group container: tracking
// identification as observation context, the finding classification, then
// the measurements themselves.
func (g MeasurementGroup) item() *sr.ContentItem {
	var children []*sr.ContentItem
	if g.TrackingIdentifier != "" {
		children = append(children, sr.NewTextItem(&sr.ConceptTrackingIdentifier, sr.RelationshipHasObsContext, g.TrackingIdentifier))
	}
	if g.TrackingUID != "" {
		children = append(children, sr.NewUIDRefItem(&sr.ConceptTrackingUID, sr.RelationshipHasObsContext, g.TrackingUID))
	}
	if g.FindingType != nil {
		children = append(children, sr.NewCodeItem(&sr.ConceptFinding, sr.RelationshipContains, *g.FindingType))
	}
	if g.FindingSite != nil {
		children = append(children, sr.NewCodeItem(&sr.ConceptFindingSite, sr.RelationshipContains, *g.FindingSite))
	}
	children = append(children, g.Items...)
	return sr.NewContainerItem(&sr.ConceptMeasurementGroup, sr.RelationshipContains, children)
}

// Measurement builds a NUM item suitable for a measurement group
func Measurement(concept sr.CodedConcept, value float64, units sr.CodedConcept) *sr.ContentItem {
	return sr.NewNumericItem(&concept, sr.RelationshipContains, value, &units)
}

// Evaluation builds a CODE item expressing a qualitative evaluation
// within a measurement group.
func Evaluation(concept sr.CodedConcept, value sr.CodedConcept) *sr.ContentItem {
	return sr.NewCodeItem(&concept, sr.RelationshipContains, value)
}
