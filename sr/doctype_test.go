package sr

import (
	"errors"
	"testing"

	srerrors "github.com/raster-image/dicomsr/errors"
	"github.com/raster-image/dicomsr/types"
)

func TestDocumentType_SOPClassUID(t *testing.T) {
	tests := []struct {
		docType  DocumentType
		expected string
	}{
		{BasicTextSR, types.BasicTextSRStorage},
		{EnhancedSR, types.EnhancedSRStorage},
		{ComprehensiveSR, types.ComprehensiveSRStorage},
		{Comprehensive3DSR, types.Comprehensive3DSRStorage},
		{KeyObjectSelectionDocument, types.KeyObjectSelectionDocStorage},
	}

	for _, tt := range tests {
		t.Run(tt.docType.String(), func(t *testing.T) {
			if got := tt.docType.SOPClassUID(); got != tt.expected {
				t.Errorf("SOPClassUID() = %s, expected %s", got, tt.expected)
			}
			resolved, ok := DocumentTypeForSOPClass(tt.expected)
			if !ok || resolved != tt.docType {
				t.Errorf("DocumentTypeForSOPClass(%s) = %v, %v", tt.expected, resolved, ok)
			}
		})
	}

	if _, ok := DocumentTypeForSOPClass(types.CTImageStorage); ok {
		t.Error("CT Image storage must not resolve to an SR family")
	}
}

func TestDocumentType_AllowedValueTypes(t *testing.T) {
	tests := []struct {
		docType    DocumentType
		allowed    []ValueType
		disallowed []ValueType
	}{
		{BasicTextSR,
			[]ValueType{ValueTypeText, ValueTypeCode, ValueTypeContainer, ValueTypeImage},
			[]ValueType{ValueTypeNum, ValueTypeSCoord, ValueTypeSCoord3D, ValueTypeTCoord}},
		{EnhancedSR,
			[]ValueType{ValueTypeNum, ValueTypeSCoord, ValueTypeTCoord},
			[]ValueType{ValueTypeSCoord3D}},
		{ComprehensiveSR,
			[]ValueType{ValueTypeNum, ValueTypeSCoord, ValueTypeTCoord},
			[]ValueType{ValueTypeSCoord3D}},
		{Comprehensive3DSR,
			[]ValueType{ValueTypeNum, ValueTypeSCoord, ValueTypeSCoord3D},
			nil},
		{KeyObjectSelectionDocument,
			[]ValueType{ValueTypeText, ValueTypeImage, ValueTypeComposite, ValueTypeWaveform},
			[]ValueType{ValueTypeNum, ValueTypeSCoord, ValueTypeSCoord3D, ValueTypeDate, ValueTypeTime, ValueTypeDateTime}},
	}

	for _, tt := range tests {
		t.Run(tt.docType.String(), func(t *testing.T) {
			for _, vt := range tt.allowed {
				if !tt.docType.Allows(vt) {
					t.Errorf("%s should allow %s", tt.docType, vt)
				}
			}
			for _, vt := range tt.disallowed {
				if tt.docType.Allows(vt) {
					t.Errorf("%s should not allow %s", tt.docType, vt)
				}
			}
		})
	}
}

func TestDocumentType_MonotonicRichness(t *testing.T) {
	// Each non-KOS family's allowed set contains its predecessor's.
	order := []DocumentType{BasicTextSR, EnhancedSR, ComprehensiveSR, Comprehensive3DSR}
	for i := 1; i < len(order); i++ {
		for _, vt := range order[i-1].AllowedValueTypes() {
			if !order[i].Allows(vt) {
				t.Errorf("%s lost %s allowed by %s", order[i], vt, order[i-1])
			}
		}
	}
}

func TestValidate_ValueTypeEnforcement(t *testing.T) {
	concept := NewConcept("121071", "DCM", "Finding")

	// For every family, every disallowed value type must be rejected.
	for docType := range map[DocumentType]struct{}{
		BasicTextSR: {}, EnhancedSR: {}, ComprehensiveSR: {},
		Comprehensive3DSR: {}, KeyObjectSelectionDocument: {},
	} {
		for _, vt := range AllValueTypes {
			if docType.Allows(vt) {
				continue
			}
			root := ContainerValue{Children: []*ContentItem{
				itemOfType(t, &concept, vt),
			}}
			err := Validate(docType, root)
			if err == nil {
				t.Errorf("%s: expected build error for %s", docType, vt)
				continue
			}
			if !errors.Is(err, srerrors.ErrInvalidValueType) {
				t.Errorf("%s/%s: expected ErrInvalidValueType, got %v", docType, vt, err)
			}
			var buildErr *srerrors.BuildError
			if !errors.As(err, &buildErr) || buildErr.ValueType != string(vt) {
				t.Errorf("%s/%s: build error does not identify the offending value type: %v", docType, vt, err)
			}
		}
	}
}

func TestValidate_Comprehensive3DFrameOfReference(t *testing.T) {
	concept := NewConcept("111010", "DCM", "Center")

	missing := ContainerValue{Children: []*ContentItem{
		NewSCoord3DItem(&concept, RelationshipContains, GraphicType3DPoint, []float64{10, 20, 30}, ""),
	}}
	err := Validate(Comprehensive3DSR, missing)
	if !errors.Is(err, srerrors.ErrMissingFrameOfReference) {
		t.Errorf("Expected ErrMissingFrameOfReference, got %v", err)
	}

	resolved := ContainerValue{Children: []*ContentItem{
		NewSCoord3DItem(&concept, RelationshipContains, GraphicType3DPoint, []float64{10, 20, 30}, "1.2.3.4"),
	}}
	if err := Validate(Comprehensive3DSR, resolved); err != nil {
		t.Errorf("Expected valid tree, got %v", err)
	}
}

func TestValidate_KeyObjectSelectionRequiresObjects(t *testing.T) {
	desc := ConceptKeyObjectDescription

	empty := ContainerValue{Children: []*ContentItem{
		NewTextItem(&desc, RelationshipContains, "nothing referenced"),
	}}
	err := Validate(KeyObjectSelectionDocument, empty)
	if !errors.Is(err, srerrors.ErrNoKeyObjects) {
		t.Errorf("Expected ErrNoKeyObjects, got %v", err)
	}
	if errors.Is(err, srerrors.ErrInvalidValueType) {
		t.Error("Key-object rule must be distinct from the value-type check")
	}

	withRef := ContainerValue{Children: []*ContentItem{
		NewImageItem(nil, RelationshipContains,
			SOPReference{SOPClassUID: types.CTImageStorage, SOPInstanceUID: "1.2.3"}, nil),
	}}
	if err := Validate(KeyObjectSelectionDocument, withRef); err != nil {
		t.Errorf("Expected valid document, got %v", err)
	}
}

func TestValidate_NestedViolation(t *testing.T) {
	heading := NewConcept("FINDINGS", SchemeSectionHeading, "Findings")
	length := NewConcept("410668003", "SRT", "Length")

	// NUM buried two levels deep in a Basic Text document
	inner := NewContainerItem(&heading, RelationshipContains, []*ContentItem{
		NewNumericItem(&length, RelationshipContains, 5, &UnitMillimeter),
	})
	root := ContainerValue{Children: []*ContentItem{
		NewContainerItem(&heading, RelationshipContains, []*ContentItem{inner}),
	}}

	err := Validate(BasicTextSR, root)
	if !errors.Is(err, srerrors.ErrInvalidValueType) {
		t.Errorf("Expected nested violation to surface, got %v", err)
	}
}

// itemOfType constructs a minimal item of each variant for validation tests
func itemOfType(t *testing.T, concept *CodedConcept, vt ValueType) *ContentItem {
	t.Helper()
	ref := SOPReference{SOPClassUID: "1.2.3", SOPInstanceUID: "4.5.6"}
	switch vt {
	case ValueTypeText:
		return NewTextItem(concept, RelationshipContains, "x")
	case ValueTypeCode:
		return NewCodeItem(concept, RelationshipContains, *concept)
	case ValueTypeNum:
		return NewNumericItem(concept, RelationshipContains, 1, nil)
	case ValueTypeDate:
		return NewDateItem(concept, RelationshipContains, "20260830")
	case ValueTypeTime:
		return NewTimeItem(concept, RelationshipContains, "120000")
	case ValueTypeDateTime:
		return NewDateTimeItem(concept, RelationshipContains, "20260830120000")
	case ValueTypePName:
		return NewPersonNameItem(concept, RelationshipContains, "DOE^JOHN")
	case ValueTypeUIDRef:
		return NewUIDRefItem(concept, RelationshipContains, "1.2.3")
	case ValueTypeComposite:
		return NewCompositeItem(concept, RelationshipContains, ref)
	case ValueTypeImage:
		return NewImageItem(concept, RelationshipContains, ref, nil)
	case ValueTypeWaveform:
		return NewWaveformItem(concept, RelationshipContains, ref, nil)
	case ValueTypeSCoord:
		return NewSCoordItem(concept, RelationshipContains, GraphicTypePoint, []float64{1, 2}, nil)
	case ValueTypeSCoord3D:
		return NewSCoord3DItem(concept, RelationshipContains, GraphicType3DPoint, []float64{1, 2, 3}, "1.2.3")
	case ValueTypeTCoord:
		return NewTCoordItem(concept, RelationshipContains, TCoordValue{RangeType: TemporalRangePoint})
	case ValueTypeContainer:
		return NewContainerItem(concept, RelationshipContains, nil)
	default:
		t.Fatalf("unknown value type %s", vt)
		return nil
	}
}
