package builder

import (
	"github.com/raster-image/dicomsr/sr"
	"github.com/raster-image/dicomsr/types"
)

// Location is the position of a CAD finding on its source image. It is a
// closed set: Point2D, Circle2D and ROI2D are the only implementations.
type Location interface {
	graphic() (sr.GraphicType, []float64)
}

// Point2D is a single image position in column/row pixel coordinates
type Point2D struct {
	X, Y float64
}

func (p Point2D) graphic() (sr.GraphicType, []float64) {
	return sr.GraphicTypePoint, []float64{p.X, p.Y}
}

// Circle2D is a circular or elliptical region given by its center and
// per-axis radii. On the wire it is the center point followed by the
// point on the perimeter offset by the radii.
type Circle2D struct {
	CenterX, CenterY float64
	RadiusX, RadiusY float64
}

func (c Circle2D) graphic() (sr.GraphicType, []float64) {
	return sr.GraphicTypeCircle, []float64{c.CenterX, c.CenterY, c.CenterX + c.RadiusX, c.CenterY + c.RadiusY}
}

// ROI2D is a free-form outline as interleaved column/row pairs
type ROI2D struct {
	Points []float64
}

func (r ROI2D) graphic() (sr.GraphicType, []float64) {
	return sr.GraphicTypePolyline, r.Points
}

// Finding is one detection reported by a CAD algorithm
type Finding struct {
	// Type classifies the finding (mass, calcification, nodule, ...)
	Type sr.CodedConcept
	// Probability is the algorithm's confidence in [0, 1]; nil when the
	// algorithm reports none.
	Probability *float64
	// Location places the finding on the referenced image; nil for
	// findings without spatial extent.
	Location Location
	// Characteristics are additional coded qualifiers of the finding
	Characteristics []sr.CodedConcept
	// ImageRef identifies the source image
	ImageRef *sr.SOPReference
}

// CADBuilder assembles Mammography and Chest CAD documents: an optional
// processing summary and the findings the algorithm detected. The two
// products share the content rules of the Comprehensive SR family while
// carrying their own storage SOP classes.
type CADBuilder struct {
	base       Builder
	templateID string
	algName    string
	algVersion string
	algMaker   string
	findings   []Finding
}

// NewMammographyCAD creates a builder for a Mammography CAD SR document
func NewMammographyCAD() CADBuilder {
	return CADBuilder{
		base: New(sr.ComprehensiveSR).
			WithTitle(sr.ConceptMammographyCADReport).
			withSOPClassUID(types.MammographyCADSRStorage),
		templateID: "4000",
	}
}

// NewChestCAD creates a builder for a Chest CAD SR document
func NewChestCAD() CADBuilder {
	return CADBuilder{
		base: New(sr.ComprehensiveSR).
			WithTitle(sr.ConceptChestCADReport).
			withSOPClassUID(types.ChestCADSRStorage),
		templateID: "4100",
	}
}

// Apply runs a generic-builder transform against the underlying builder
func (b CADBuilder) Apply(fn func(Builder) Builder) CADBuilder {
	b.base = fn(b.base)
	return b
}

// WithPatientID sets the patient identifier
func (b CADBuilder) WithPatientID(id string) CADBuilder {
	b.base = b.base.WithPatientID(id)
	return b
}

// WithPatientName sets the patient name (DICOM PN form)
func (b CADBuilder) WithPatientName(name string) CADBuilder {
	b.base = b.base.WithPatientName(name)
	return b
}

// WithStudyInstanceUID sets the Study Instance UID
func (b CADBuilder) WithStudyInstanceUID(uid string) CADBuilder {
	b.base = b.base.WithStudyInstanceUID(uid)
	return b
}

// WithValidateOnBuild toggles structural validation at build time
func (b CADBuilder) WithValidateOnBuild(enabled bool) CADBuilder {
	b.base = b.base.WithValidateOnBuild(enabled)
	return b
}

// WithProcessingSummary records the identity of the algorithm that
// produced the findings.
func (b CADBuilder) WithProcessingSummary(name, version, manufacturer string) CADBuilder {
	b.algName = name
	b.algVersion = version
	b.algMaker = manufacturer
	return b
}

// AddFinding appends a detection to the report
func (b CADBuilder) AddFinding(finding Finding) CADBuilder {
	b.findings = append(b.findings[:len(b.findings):len(b.findings)], finding)
	return b
}

// Build merges the summary and findings into the CAD document structure
// and finishes through the generic build path.
func (b CADBuilder) Build() (*sr.SRDocument, error) {
	s := skeleton{
		templateID:      b.templateID,
		mappingResource: "DCMR",
		slots: []slot{
			b.summarySlot,
			b.findingsSlot,
		},
	}
	return b.base.buildWithRoot(s.assemble())
}

func (b CADBuilder) summarySlot() []*sr.ContentItem {
	if b.algName == "" && b.algVersion == "" && b.algMaker == "" {
		return nil
	}
	var children []*sr.ContentItem
	if b.algName != "" {
		children = append(children, sr.NewTextItem(&sr.ConceptAlgorithmName, sr.RelationshipHasProperties, b.algName))
	}
	if b.algVersion != "" {
		children = append(children, sr.NewTextItem(&sr.ConceptAlgorithmVersion, sr.RelationshipHasProperties, b.algVersion))
	}
	if b.algMaker != "" {
		children = append(children, sr.NewTextItem(&sr.ConceptAlgorithmManufacturer, sr.RelationshipHasProperties, b.algMaker))
	}
	return []*sr.ContentItem{
		sr.NewContainerItem(&sr.ConceptCADProcessingSummary, sr.RelationshipContains, children),
	}
}

func (b CADBuilder) findingsSlot() []*sr.ContentItem {
	items := make([]*sr.ContentItem, 0, len(b.findings))
	for _, finding := range b.findings {
		items = append(items, finding.item())
	}
	return items
}

// item renders the finding as a Single Image Finding container
func (f Finding) item() *sr.ContentItem {
	var children []*sr.ContentItem
	children = append(children, sr.NewCodeItem(&sr.ConceptFinding, sr.RelationshipContains, f.Type))
	if f.Probability != nil {
		units := sr.UnitNoUnits
		children = append(children, sr.NewNumericItem(&sr.ConceptProbabilityOfFinding, sr.RelationshipHasProperties, *f.Probability, &units))
	}
	if f.Location != nil {
		graphicType, data := f.Location.graphic()
		children = append(children, sr.NewSCoordItem(&sr.ConceptFindingLocation, sr.RelationshipContains, graphicType, data, f.ImageRef))
	} else if f.ImageRef != nil {
		children = append(children, sr.NewImageItem(nil, sr.RelationshipContains, *f.ImageRef, nil))
	}
	for _, characteristic := range f.Characteristics {
		children = append(children, sr.NewCodeItem(&sr.ConceptFinding, sr.RelationshipHasProperties, characteristic))
	}
	return sr.NewContainerItem(&sr.ConceptSingleImageFinding, sr.RelationshipContains, children)
}
