// Package extract provides typed read-only views over parsed SR
// documents. Each view checks that the document family matches before
// projecting the content tree into flat domain structures.
package extract

import (
	srerrors "github.com/raster-image/dicomsr/errors"
	"github.com/raster-image/dicomsr/sr"
)

// Measurement is one numeric measurement within a group
type Measurement struct {
	Concept *sr.CodedConcept
	Values  []float64
	Units   *sr.CodedConcept
}

// Value returns the scalar measurement value
func (m Measurement) Value() float64 {
	if len(m.Values) == 0 {
		return 0
	}
	return m.Values[0]
}

// Evaluation is one coded qualitative evaluation within a group
type Evaluation struct {
	Concept *sr.CodedConcept
	Value   sr.CodedConcept
}

// MeasurementGroup is the flattened projection of one measurement group
// container.
type MeasurementGroup struct {
	TrackingIdentifier string
	TrackingUID        string
	FindingType        *sr.CodedConcept
	FindingSite        *sr.CodedConcept
	Measurements       []Measurement
	Evaluations        []Evaluation
}

// Measurement returns the first measurement matching the concept
func (g MeasurementGroup) Measurement(concept sr.CodedConcept) (Measurement, bool) {
	for _, m := range g.Measurements {
		if m.Concept != nil && m.Concept.SameCodeAs(concept) {
			return m, true
		}
	}
	return Measurement{}, false
}

// MeasurementReport is the measurement-oriented view of a document
type MeasurementReport struct {
	Title      *sr.CodedConcept
	Language   *sr.CodedConcept
	Procedures []sr.CodedConcept
	Library    []sr.SOPReference
	Groups     []MeasurementGroup
}

// GroupByTracking returns the group with the given tracking identifier
func (r *MeasurementReport) GroupByTracking(identifier string) (MeasurementGroup, bool) {
	for _, g := range r.Groups {
		if g.TrackingIdentifier == identifier {
			return g, true
		}
	}
	return MeasurementGroup{}, false
}

// NewMeasurementReport projects a document into the measurement view.
// Only the families that may carry NUM content qualify.
func NewMeasurementReport(doc *sr.SRDocument) (*MeasurementReport, error) {
	switch doc.DocumentType() {
	case sr.EnhancedSR, sr.ComprehensiveSR, sr.Comprehensive3DSR:
	default:
		return nil, srerrors.NewExtractionError(
			"MeasurementReport",
			"EnhancedSR, ComprehensiveSR or Comprehensive3DSR",
			doc.DocumentType().String(),
			srerrors.ErrInvalidDocumentType,
		)
	}

	report := &MeasurementReport{Title: doc.Title()}
	root := doc.Root()

	for _, item := range root.Children {
		if item.Relationship() != sr.RelationshipHasObsContext {
			continue
		}
		code, ok := item.AsCode()
		if !ok || item.ConceptName() == nil {
			continue
		}
		switch {
		case item.ConceptName().SameCodeAs(sr.ConceptLanguageOfContent):
			concept := code.Concept
			report.Language = &concept
		case item.ConceptName().SameCodeAs(sr.ConceptProcedureReported):
			report.Procedures = append(report.Procedures, code.Concept)
		}
	}

	if library := root.Child(sr.ConceptImageLibrary.CodeMeaning); library != nil {
		if container, ok := library.AsContainer(); ok {
			for _, entry := range container.ChildrenOfType(sr.ValueTypeImage, false) {
				image, _ := entry.AsImage()
				report.Library = append(report.Library, image.Ref)
			}
		}
	}

	for _, groupItem := range root.FindMeasurementGroups() {
		container, _ := groupItem.AsContainer()
		report.Groups = append(report.Groups, projectGroup(container))
	}
	return report, nil
}

func projectGroup(container sr.ContainerValue) MeasurementGroup {
	group := MeasurementGroup{}
	for _, child := range container.Children {
		concept := child.ConceptName()
		switch child.ValueType() {
		case sr.ValueTypeText:
			if concept != nil && concept.SameCodeAs(sr.ConceptTrackingIdentifier) {
				text, _ := child.AsText()
				group.TrackingIdentifier = text.Text
			}
		case sr.ValueTypeUIDRef:
			if concept != nil && concept.SameCodeAs(sr.ConceptTrackingUID) {
				uid, _ := child.AsUIDRef()
				group.TrackingUID = uid.UID
			}
		case sr.ValueTypeCode:
			code, _ := child.AsCode()
			switch {
			case concept != nil && concept.SameCodeAs(sr.ConceptFindingSite):
				value := code.Concept
				group.FindingSite = &value
			case concept != nil && concept.SameCodeAs(sr.ConceptFinding) && group.FindingType == nil:
				value := code.Concept
				group.FindingType = &value
			default:
				group.Evaluations = append(group.Evaluations, Evaluation{Concept: concept, Value: code.Concept})
			}
		case sr.ValueTypeNum:
			num, _ := child.AsNumeric()
			group.Measurements = append(group.Measurements, Measurement{
				Concept: concept,
				Values:  num.Values,
				Units:   num.Units,
			})
		}
	}
	return group
}
