package sr

// ValueType is the content-item discriminant, carried on the wire in
// Value Type (0040,A040).
type ValueType string

const (
	ValueTypeText      ValueType = "TEXT"
	ValueTypeCode      ValueType = "CODE"
	ValueTypeNum       ValueType = "NUM"
	ValueTypeDateTime  ValueType = "DATETIME"
	ValueTypeDate      ValueType = "DATE"
	ValueTypeTime      ValueType = "TIME"
	ValueTypePName     ValueType = "PNAME"
	ValueTypeUIDRef    ValueType = "UIDREF"
	ValueTypeComposite ValueType = "COMPOSITE"
	ValueTypeImage     ValueType = "IMAGE"
	ValueTypeWaveform  ValueType = "WAVEFORM"
	ValueTypeSCoord    ValueType = "SCOORD"
	ValueTypeSCoord3D  ValueType = "SCOORD3D"
	ValueTypeTCoord    ValueType = "TCOORD"
	ValueTypeContainer ValueType = "CONTAINER"
)

// AllValueTypes lists every value type in the closed variant set.
var AllValueTypes = []ValueType{
	ValueTypeText, ValueTypeCode, ValueTypeNum, ValueTypeDateTime,
	ValueTypeDate, ValueTypeTime, ValueTypePName, ValueTypeUIDRef,
	ValueTypeComposite, ValueTypeImage, ValueTypeWaveform,
	ValueTypeSCoord, ValueTypeSCoord3D, ValueTypeTCoord, ValueTypeContainer,
}

// IsValid reports whether the discriminant names a known variant
func (vt ValueType) IsValid() bool {
	switch vt {
	case ValueTypeText, ValueTypeCode, ValueTypeNum, ValueTypeDateTime,
		ValueTypeDate, ValueTypeTime, ValueTypePName, ValueTypeUIDRef,
		ValueTypeComposite, ValueTypeImage, ValueTypeWaveform,
		ValueTypeSCoord, ValueTypeSCoord3D, ValueTypeTCoord, ValueTypeContainer:
		return true
	default:
		return false
	}
}

// RelationshipType is the semantic label on the edge from a content item
// to its parent, carried in Relationship Type (0040,A010). Every non-root
// item carries exactly one; the root container has none.
type RelationshipType string

const (
	RelationshipContains      RelationshipType = "CONTAINS"
	RelationshipHasProperties RelationshipType = "HAS PROPERTIES"
	RelationshipHasObsContext RelationshipType = "HAS OBS CONTEXT"
	RelationshipHasAcqContext RelationshipType = "HAS ACQ CONTEXT"
	RelationshipInferredFrom  RelationshipType = "INFERRED FROM"
	RelationshipSelectedFrom  RelationshipType = "SELECTED FROM"
)

// GraphicType identifies the geometry of a 2D spatial coordinates item
type GraphicType string

const (
	GraphicTypePoint      GraphicType = "POINT"
	GraphicTypeMultipoint GraphicType = "MULTIPOINT"
	GraphicTypePolyline   GraphicType = "POLYLINE"
	GraphicTypeCircle     GraphicType = "CIRCLE"
	GraphicTypeEllipse    GraphicType = "ELLIPSE"
)

// GraphicType3D identifies the geometry of a 3D spatial coordinates item
type GraphicType3D string

const (
	GraphicType3DPoint      GraphicType3D = "POINT"
	GraphicType3DMultipoint GraphicType3D = "MULTIPOINT"
	GraphicType3DPolyline   GraphicType3D = "POLYLINE"
	GraphicType3DPolygon    GraphicType3D = "POLYGON"
	GraphicType3DEllipse    GraphicType3D = "ELLIPSE"
	GraphicType3DEllipsoid  GraphicType3D = "ELLIPSOID"
)

// TemporalRangeType identifies the span of a temporal coordinates item
type TemporalRangeType string

const (
	TemporalRangePoint        TemporalRangeType = "POINT"
	TemporalRangeMultipoint   TemporalRangeType = "MULTIPOINT"
	TemporalRangeSegment      TemporalRangeType = "SEGMENT"
	TemporalRangeMultisegment TemporalRangeType = "MULTISEGMENT"
	TemporalRangeBegin        TemporalRangeType = "BEGIN"
	TemporalRangeEnd          TemporalRangeType = "END"
)

// Continuity of Content (0040,A050) values for containers
const (
	ContinuitySeparate   = "SEPARATE"
	ContinuityContinuous = "CONTINUOUS"
)
