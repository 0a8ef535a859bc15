package sr

import "github.com/raster-image/dicomsr/types"

// DocumentType identifies one of the five SR document families handled by
// this library.
type DocumentType int

const (
	BasicTextSR DocumentType = iota
	EnhancedSR
	ComprehensiveSR
	Comprehensive3DSR
	KeyObjectSelectionDocument
)

// policy holds the static per-family rules that drive build-time
// validation: the SOP class, the allowed value-type set and the default
// document flags.
type policy struct {
	name             string
	sopClassUID      string
	allowed          map[ValueType]bool
	completionFlag   string
	verificationFlag string
}

func valueTypeSet(vts ...ValueType) map[ValueType]bool {
	set := make(map[ValueType]bool, len(vts))
	for _, vt := range vts {
		set[vt] = true
	}
	return set
}

var basicTextValueTypes = []ValueType{
	ValueTypeContainer, ValueTypeText, ValueTypeCode, ValueTypeDateTime,
	ValueTypeDate, ValueTypeTime, ValueTypePName, ValueTypeUIDRef,
	ValueTypeComposite, ValueTypeImage, ValueTypeWaveform,
}

var enhancedValueTypes = append(append([]ValueType{}, basicTextValueTypes...),
	ValueTypeNum, ValueTypeSCoord, ValueTypeTCoord)

var comprehensive3DValueTypes = append(append([]ValueType{}, enhancedValueTypes...),
	ValueTypeSCoord3D)

var keyObjectValueTypes = []ValueType{
	ValueTypeContainer, ValueTypeText, ValueTypeCode, ValueTypeUIDRef,
	ValueTypePName, ValueTypeComposite, ValueTypeImage, ValueTypeWaveform,
}

// policies is the static table keyed by document type. The allowed sets
// grow monotonically from Basic Text up to Comprehensive 3D; Key Object
// Selection is a distinct restricted family.
var policies = map[DocumentType]policy{
	BasicTextSR: {
		name:             "BasicTextSR",
		sopClassUID:      types.BasicTextSRStorage,
		allowed:          valueTypeSet(basicTextValueTypes...),
		completionFlag:   "COMPLETE",
		verificationFlag: "UNVERIFIED",
	},
	EnhancedSR: {
		name:             "EnhancedSR",
		sopClassUID:      types.EnhancedSRStorage,
		allowed:          valueTypeSet(enhancedValueTypes...),
		completionFlag:   "COMPLETE",
		verificationFlag: "UNVERIFIED",
	},
	ComprehensiveSR: {
		name:             "ComprehensiveSR",
		sopClassUID:      types.ComprehensiveSRStorage,
		allowed:          valueTypeSet(enhancedValueTypes...),
		completionFlag:   "COMPLETE",
		verificationFlag: "UNVERIFIED",
	},
	Comprehensive3DSR: {
		name:             "Comprehensive3DSR",
		sopClassUID:      types.Comprehensive3DSRStorage,
		allowed:          valueTypeSet(comprehensive3DValueTypes...),
		completionFlag:   "COMPLETE",
		verificationFlag: "UNVERIFIED",
	},
	KeyObjectSelectionDocument: {
		name:             "KeyObjectSelectionDocument",
		sopClassUID:      types.KeyObjectSelectionDocStorage,
		allowed:          valueTypeSet(keyObjectValueTypes...),
		completionFlag:   "COMPLETE",
		verificationFlag: "UNVERIFIED",
	},
}

// String returns the family name
func (dt DocumentType) String() string {
	if p, ok := policies[dt]; ok {
		return p.name
	}
	return "UnknownDocumentType"
}

// SOPClassUID returns the storage SOP Class UID of the family
func (dt DocumentType) SOPClassUID() string {
	return policies[dt].sopClassUID
}

// Allows reports whether the family admits the value type
func (dt DocumentType) Allows(vt ValueType) bool {
	return policies[dt].allowed[vt]
}

// AllowedValueTypes returns the family's allowed value-type set in the
// canonical AllValueTypes order.
func (dt DocumentType) AllowedValueTypes() []ValueType {
	allowed := policies[dt].allowed
	result := make([]ValueType, 0, len(allowed))
	for _, vt := range AllValueTypes {
		if allowed[vt] {
			result = append(result, vt)
		}
	}
	return result
}

// DefaultCompletionFlag returns the family's default completion flag
func (dt DocumentType) DefaultCompletionFlag() string {
	return policies[dt].completionFlag
}

// DefaultVerificationFlag returns the family's default verification flag
func (dt DocumentType) DefaultVerificationFlag() string {
	return policies[dt].verificationFlag
}

// DocumentTypeForSOPClass resolves a storage SOP Class UID back to its
// document family. The CAD SR storage classes resolve to ComprehensiveSR,
// whose value-type rules they share here.
func DocumentTypeForSOPClass(sopClassUID string) (DocumentType, bool) {
	switch sopClassUID {
	case types.BasicTextSRStorage:
		return BasicTextSR, true
	case types.EnhancedSRStorage:
		return EnhancedSR, true
	case types.ComprehensiveSRStorage, types.MammographyCADSRStorage, types.ChestCADSRStorage:
		return ComprehensiveSR, true
	case types.Comprehensive3DSRStorage:
		return Comprehensive3DSR, true
	case types.KeyObjectSelectionDocStorage:
		return KeyObjectSelectionDocument, true
	default:
		return 0, false
	}
}
