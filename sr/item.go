package sr

// SOPReference identifies a composite object by SOP class and instance
type SOPReference struct {
	SOPClassUID    string
	SOPInstanceUID string
}

// Value is the closed payload union behind a content item. Exactly one
// concrete payload type exists per value type; the unexported method keeps
// the set closed to this package.
type Value interface {
	valueType() ValueType
}

// TextValue is the payload of a TEXT item
type TextValue struct {
	Text string
}

// CodeValue is the payload of a CODE item
type CodeValue struct {
	Concept CodedConcept
}

// NumericValue is the payload of a NUM item. It holds one or more values
// plus an optional units concept (UCUM-coded in practice, opaque here).
type NumericValue struct {
	Values []float64
	Units  *CodedConcept
}

// Value returns the scalar value: the first entry of Values, or 0 when empty
func (n NumericValue) Value() float64 {
	if len(n.Values) == 0 {
		return 0
	}
	return n.Values[0]
}

// DateValue is the payload of a DATE item (DICOM DA string, YYYYMMDD)
type DateValue struct {
	Date string
}

// TimeValue is the payload of a TIME item (DICOM TM string)
type TimeValue struct {
	Time string
}

// DateTimeValue is the payload of a DATETIME item (DICOM DT string)
type DateTimeValue struct {
	DateTime string
}

// PersonNameValue is the payload of a PNAME item (DICOM PN string)
type PersonNameValue struct {
	Name string
}

// UIDRefValue is the payload of a UIDREF item
type UIDRefValue struct {
	UID string
}

// CompositeValue is the payload of a COMPOSITE item
type CompositeValue struct {
	Ref SOPReference
}

// ImageValue is the payload of an IMAGE item; Frames selects individual
// frames of a multi-frame image when non-empty.
type ImageValue struct {
	Ref    SOPReference
	Frames []int
}

// WaveformValue is the payload of a WAVEFORM item
type WaveformValue struct {
	Ref      SOPReference
	Channels []int
}

// SCoordValue is the payload of a SCOORD item: 2D image-relative
// coordinates as a flat (column, row) pair list.
type SCoordValue struct {
	GraphicType GraphicType
	GraphicData []float64
	ImageRef    *SOPReference
}

// SCoord3DValue is the payload of a SCOORD3D item: patient-relative (x,y,z)
// triplets within a frame of reference.
type SCoord3DValue struct {
	GraphicType         GraphicType3D
	GraphicData         []float64
	FrameOfReferenceUID string
}

// TCoordValue is the payload of a TCOORD item
type TCoordValue struct {
	RangeType       TemporalRangeType
	SamplePositions []int
	TimeOffsets     []float64
	DateTimes       []string
}

// ContainerValue is the payload of a CONTAINER item: an ordered child list
// plus the continuity-of-content flag. The self-reference through Children
// gives the recursive tree structure. Child order is load-bearing: path
// indices and traversal order follow it.
type ContainerValue struct {
	Children        []*ContentItem
	Continuous      bool
	TemplateID      string
	MappingResource string
}

func (TextValue) valueType() ValueType       { return ValueTypeText }
func (CodeValue) valueType() ValueType       { return ValueTypeCode }
func (NumericValue) valueType() ValueType    { return ValueTypeNum }
func (DateValue) valueType() ValueType       { return ValueTypeDate }
func (TimeValue) valueType() ValueType       { return ValueTypeTime }
func (DateTimeValue) valueType() ValueType   { return ValueTypeDateTime }
func (PersonNameValue) valueType() ValueType { return ValueTypePName }
func (UIDRefValue) valueType() ValueType     { return ValueTypeUIDRef }
func (CompositeValue) valueType() ValueType  { return ValueTypeComposite }
func (ImageValue) valueType() ValueType      { return ValueTypeImage }
func (WaveformValue) valueType() ValueType   { return ValueTypeWaveform }
func (SCoordValue) valueType() ValueType     { return ValueTypeSCoord }
func (SCoord3DValue) valueType() ValueType   { return ValueTypeSCoord3D }
func (TCoordValue) valueType() ValueType     { return ValueTypeTCoord }
func (ContainerValue) valueType() ValueType  { return ValueTypeContainer }

// ContentItem is one node of the content tree: a value-type discriminant
// (via its payload), an optional concept name, and the relationship to its
// parent. Items are read-only once constructed.
type ContentItem struct {
	concept      *CodedConcept
	relationship RelationshipType
	value        Value
}

// NewContentItem wraps a payload into a content item. The concept name may
// be nil; the relationship is ignored on root containers.
func NewContentItem(concept *CodedConcept, rel RelationshipType, value Value) *ContentItem {
	return &ContentItem{concept: concept, relationship: rel, value: value}
}

// ValueType returns the discriminant; always available without narrowing
func (ci *ContentItem) ValueType() ValueType {
	return ci.value.valueType()
}

// ConceptName returns the optional concept name, or nil
func (ci *ContentItem) ConceptName() *CodedConcept {
	return ci.concept
}

// Relationship returns the relationship to the parent item
func (ci *ContentItem) Relationship() RelationshipType {
	return ci.relationship
}

// AsText narrows to the TEXT payload
func (ci *ContentItem) AsText() (TextValue, bool) {
	v, ok := ci.value.(TextValue)
	return v, ok
}

// AsCode narrows to the CODE payload
func (ci *ContentItem) AsCode() (CodeValue, bool) {
	v, ok := ci.value.(CodeValue)
	return v, ok
}

// AsNumeric narrows to the NUM payload
func (ci *ContentItem) AsNumeric() (NumericValue, bool) {
	v, ok := ci.value.(NumericValue)
	return v, ok
}

// AsDate narrows to the DATE payload
func (ci *ContentItem) AsDate() (DateValue, bool) {
	v, ok := ci.value.(DateValue)
	return v, ok
}

// AsTime narrows to the TIME payload
func (ci *ContentItem) AsTime() (TimeValue, bool) {
	v, ok := ci.value.(TimeValue)
	return v, ok
}

// AsDateTime narrows to the DATETIME payload
func (ci *ContentItem) AsDateTime() (DateTimeValue, bool) {
	v, ok := ci.value.(DateTimeValue)
	return v, ok
}

// AsPersonName narrows to the PNAME payload
func (ci *ContentItem) AsPersonName() (PersonNameValue, bool) {
	v, ok := ci.value.(PersonNameValue)
	return v, ok
}

// AsUIDRef narrows to the UIDREF payload
func (ci *ContentItem) AsUIDRef() (UIDRefValue, bool) {
	v, ok := ci.value.(UIDRefValue)
	return v, ok
}

// AsComposite narrows to the COMPOSITE payload
func (ci *ContentItem) AsComposite() (CompositeValue, bool) {
	v, ok := ci.value.(CompositeValue)
	return v, ok
}

// AsImage narrows to the IMAGE payload
func (ci *ContentItem) AsImage() (ImageValue, bool) {
	v, ok := ci.value.(ImageValue)
	return v, ok
}

// AsWaveform narrows to the WAVEFORM payload
func (ci *ContentItem) AsWaveform() (WaveformValue, bool) {
	v, ok := ci.value.(WaveformValue)
	return v, ok
}

// AsSCoord narrows to the SCOORD payload
func (ci *ContentItem) AsSCoord() (SCoordValue, bool) {
	v, ok := ci.value.(SCoordValue)
	return v, ok
}

// AsSCoord3D narrows to the SCOORD3D payload
func (ci *ContentItem) AsSCoord3D() (SCoord3DValue, bool) {
	v, ok := ci.value.(SCoord3DValue)
	return v, ok
}

// AsTCoord narrows to the TCOORD payload
func (ci *ContentItem) AsTCoord() (TCoordValue, bool) {
	v, ok := ci.value.(TCoordValue)
	return v, ok
}

// AsContainer narrows to the CONTAINER payload
func (ci *ContentItem) AsContainer() (ContainerValue, bool) {
	v, ok := ci.value.(ContainerValue)
	return v, ok
}

// Typed constructors. Each wraps a payload with a concept name and a
// relationship; builders default the relationship to CONTAINS.

// NewTextItem creates a TEXT item
func NewTextItem(concept *CodedConcept, rel RelationshipType, text string) *ContentItem {
	return NewContentItem(concept, rel, TextValue{Text: text})
}

// NewCodeItem creates a CODE item
func NewCodeItem(concept *CodedConcept, rel RelationshipType, code CodedConcept) *ContentItem {
	return NewContentItem(concept, rel, CodeValue{Concept: code})
}

// NewNumericItem creates a NUM item with a single value
func NewNumericItem(concept *CodedConcept, rel RelationshipType, value float64, units *CodedConcept) *ContentItem {
	return NewContentItem(concept, rel, NumericValue{Values: []float64{value}, Units: units})
}

// NewNumericListItem creates a NUM item holding a list of values
func NewNumericListItem(concept *CodedConcept, rel RelationshipType, values []float64, units *CodedConcept) *ContentItem {
	return NewContentItem(concept, rel, NumericValue{Values: values, Units: units})
}

// NewDateItem creates a DATE item
func NewDateItem(concept *CodedConcept, rel RelationshipType, date string) *ContentItem {
	return NewContentItem(concept, rel, DateValue{Date: date})
}

// NewTimeItem creates a TIME item
func NewTimeItem(concept *CodedConcept, rel RelationshipType, tm string) *ContentItem {
	return NewContentItem(concept, rel, TimeValue{Time: tm})
}

// NewDateTimeItem creates a DATETIME item
func NewDateTimeItem(concept *CodedConcept, rel RelationshipType, dt string) *ContentItem {
	return NewContentItem(concept, rel, DateTimeValue{DateTime: dt})
}

// NewPersonNameItem creates a PNAME item
func NewPersonNameItem(concept *CodedConcept, rel RelationshipType, name string) *ContentItem {
	return NewContentItem(concept, rel, PersonNameValue{Name: name})
}

// NewUIDRefItem creates a UIDREF item
func NewUIDRefItem(concept *CodedConcept, rel RelationshipType, uid string) *ContentItem {
	return NewContentItem(concept, rel, UIDRefValue{UID: uid})
}

// NewCompositeItem creates a COMPOSITE item
func NewCompositeItem(concept *CodedConcept, rel RelationshipType, ref SOPReference) *ContentItem {
	return NewContentItem(concept, rel, CompositeValue{Ref: ref})
}

// NewImageItem creates an IMAGE item
func NewImageItem(concept *CodedConcept, rel RelationshipType, ref SOPReference, frames []int) *ContentItem {
	return NewContentItem(concept, rel, ImageValue{Ref: ref, Frames: frames})
}

// NewWaveformItem creates a WAVEFORM item
func NewWaveformItem(concept *CodedConcept, rel RelationshipType, ref SOPReference, channels []int) *ContentItem {
	return NewContentItem(concept, rel, WaveformValue{Ref: ref, Channels: channels})
}

// NewSCoordItem creates a SCOORD item
func NewSCoordItem(concept *CodedConcept, rel RelationshipType, graphicType GraphicType, data []float64, imageRef *SOPReference) *ContentItem {
	return NewContentItem(concept, rel, SCoordValue{GraphicType: graphicType, GraphicData: data, ImageRef: imageRef})
}

// NewSCoord3DItem creates a SCOORD3D item
func NewSCoord3DItem(concept *CodedConcept, rel RelationshipType, graphicType GraphicType3D, data []float64, frameOfReferenceUID string) *ContentItem {
	return NewContentItem(concept, rel, SCoord3DValue{GraphicType: graphicType, GraphicData: data, FrameOfReferenceUID: frameOfReferenceUID})
}

// NewTCoordItem creates a TCOORD item
func NewTCoordItem(concept *CodedConcept, rel RelationshipType, value TCoordValue) *ContentItem {
	return NewContentItem(concept, rel, value)
}

// NewContainerItem creates a CONTAINER item with the given ordered children
func NewContainerItem(concept *CodedConcept, rel RelationshipType, children []*ContentItem) *ContentItem {
	return NewContentItem(concept, rel, ContainerValue{Children: children})
}

// NewContainerItemValue creates a CONTAINER item from a fully populated
// payload (continuity flag, template identification).
func NewContainerItemValue(concept *CodedConcept, rel RelationshipType, value ContainerValue) *ContentItem {
	return NewContentItem(concept, rel, value)
}
