package extract

import (
	"math"

	srerrors "github.com/raster-image/dicomsr/errors"
	"github.com/raster-image/dicomsr/sr"
	"github.com/raster-image/dicomsr/types"
)

// Algorithm identifies the CAD algorithm that produced a report
type Algorithm struct {
	Name         string
	Version      string
	Manufacturer string
}

// Circle is a circular finding location recovered from its wire form:
// the center point plus the perimeter point offset by the radii.
type Circle struct {
	CenterX, CenterY float64
	RadiusX, RadiusY float64
}

// CADFinding is the flattened projection of one detected finding
type CADFinding struct {
	Type            *sr.CodedConcept
	Probability     *float64
	GraphicType     sr.GraphicType
	GraphicData     []float64
	ImageRef        *sr.SOPReference
	Characteristics []sr.CodedConcept
}

// Point returns the finding position for POINT-located findings
func (f CADFinding) Point() (x, y float64, ok bool) {
	if f.GraphicType != sr.GraphicTypePoint || len(f.GraphicData) < 2 {
		return 0, 0, false
	}
	return f.GraphicData[0], f.GraphicData[1], true
}

// Circle reconstructs the circular region for CIRCLE-located findings
func (f CADFinding) Circle() (Circle, bool) {
	if f.GraphicType != sr.GraphicTypeCircle || len(f.GraphicData) < 4 {
		return Circle{}, false
	}
	return Circle{
		CenterX: f.GraphicData[0],
		CenterY: f.GraphicData[1],
		RadiusX: math.Abs(f.GraphicData[2] - f.GraphicData[0]),
		RadiusY: math.Abs(f.GraphicData[3] - f.GraphicData[1]),
	}, true
}

// CADFindings is the CAD-oriented view of a document
type CADFindings struct {
	Title     *sr.CodedConcept
	Algorithm Algorithm
	Findings  []CADFinding
}

// NewCADFindings projects a document into the CAD view. The document
// must carry one of the CAD storage classes or the plain Comprehensive
// SR class some producers use.
func NewCADFindings(doc *sr.SRDocument) (*CADFindings, error) {
	switch doc.SOPClassUID() {
	case types.MammographyCADSRStorage, types.ChestCADSRStorage, types.ComprehensiveSRStorage:
	default:
		return nil, srerrors.NewExtractionError(
			"CADFindings",
			"Mammography CAD SR, Chest CAD SR or Comprehensive SR",
			doc.SOPClassUID(),
			srerrors.ErrInvalidDocumentType,
		)
	}

	view := &CADFindings{Title: doc.Title()}
	root := doc.Root()

	if summary := root.Child(sr.ConceptCADProcessingSummary.CodeMeaning); summary != nil {
		if container, ok := summary.AsContainer(); ok {
			view.Algorithm = projectAlgorithm(container)
		}
	}

	for _, item := range root.ChildrenWithConcept(sr.ConceptSingleImageFinding, true) {
		container, ok := item.AsContainer()
		if !ok {
			continue
		}
		view.Findings = append(view.Findings, projectFinding(container))
	}
	return view, nil
}

func projectAlgorithm(container sr.ContainerValue) Algorithm {
	alg := Algorithm{}
	for _, child := range container.Children {
		text, ok := child.AsText()
		if !ok || child.ConceptName() == nil {
			continue
		}
		switch {
		case child.ConceptName().SameCodeAs(sr.ConceptAlgorithmName):
			alg.Name = text.Text
		case child.ConceptName().SameCodeAs(sr.ConceptAlgorithmVersion):
			alg.Version = text.Text
		case child.ConceptName().SameCodeAs(sr.ConceptAlgorithmManufacturer):
			alg.Manufacturer = text.Text
		}
	}
	return alg
}

func projectFinding(container sr.ContainerValue) CADFinding {
	finding := CADFinding{}
	for _, child := range container.Children {
		concept := child.ConceptName()
		switch child.ValueType() {
		case sr.ValueTypeCode:
			code, _ := child.AsCode()
			if child.Relationship() == sr.RelationshipHasProperties {
				finding.Characteristics = append(finding.Characteristics, code.Concept)
				continue
			}
			if finding.Type == nil {
				value := code.Concept
				finding.Type = &value
			}
		case sr.ValueTypeNum:
			if concept != nil && concept.SameCodeAs(sr.ConceptProbabilityOfFinding) {
				num, _ := child.AsNumeric()
				value := num.Value()
				finding.Probability = &value
			}
		case sr.ValueTypeSCoord:
			sc, _ := child.AsSCoord()
			finding.GraphicType = sc.GraphicType
			finding.GraphicData = sc.GraphicData
			if sc.ImageRef != nil {
				ref := *sc.ImageRef
				finding.ImageRef = &ref
			}
		case sr.ValueTypeImage:
			if finding.ImageRef == nil {
				image, _ := child.AsImage()
				ref := image.Ref
				finding.ImageRef = &ref
			}
		}
	}
	return finding
}
