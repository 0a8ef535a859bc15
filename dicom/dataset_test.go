package dicom

import (
	"testing"

	"github.com/raster-image/dicomsr/types"
)

func TestNewDataset(t *testing.T) {
	ds := NewDataset()
	if ds == nil {
		t.Fatal("NewDataset returned nil")
	}
	if ds.Len() != 0 {
		t.Errorf("Expected empty dataset, got %d elements", ds.Len())
	}
}

func TestDataset_SetElement(t *testing.T) {
	ds := NewDataset()

	tag := types.TagPatientName
	ds.SetString(tag, types.VR_PN, "DOE^JOHN")

	element, exists := ds.GetElement(tag)
	if !exists {
		t.Fatal("Element not found after adding")
	}
	if element.Tag != tag {
		t.Errorf("Tag mismatch: expected %v, got %v", tag, element.Tag)
	}
	if element.VR != types.VR_PN {
		t.Errorf("VR mismatch: expected %s, got %s", types.VR_PN, element.VR)
	}
	if element.Value != "DOE^JOHN" {
		t.Errorf("Value mismatch: expected DOE^JOHN, got %v", element.Value)
	}
}

func TestDataset_InsertionOrder(t *testing.T) {
	ds := NewDataset()
	ds.SetString(types.TagPatientID, types.VR_LO, "12345")
	ds.SetString(types.TagSOPClassUID, types.VR_UI, "1.2.3")
	ds.SetString(types.TagValueType, types.VR_CS, "TEXT")

	expected := []types.Tag{types.TagPatientID, types.TagSOPClassUID, types.TagValueType}
	tags := ds.Tags()
	if len(tags) != len(expected) {
		t.Fatalf("Expected %d tags, got %d", len(expected), len(tags))
	}
	for i, tag := range expected {
		if tags[i] != tag {
			t.Errorf("Tag %d: expected %v, got %v", i, tag, tags[i])
		}
	}

	// Replacing an element must not change its position
	ds.SetString(types.TagSOPClassUID, types.VR_UI, "1.2.4")
	if got := ds.Tags()[1]; got != types.TagSOPClassUID {
		t.Errorf("Expected SOP Class UID to stay at index 1, got %v", got)
	}
	if got := ds.GetString(types.TagSOPClassUID); got != "1.2.4" {
		t.Errorf("Expected replaced value 1.2.4, got %q", got)
	}
}

func TestDataset_GetString(t *testing.T) {
	ds := NewDataset()

	tests := []struct {
		name     string
		tag      types.Tag
		value    interface{}
		vr       string
		expected string
	}{
		{"String value", types.TagPatientName, "DOE^JOHN", types.VR_PN, "DOE^JOHN"},
		{"String with spaces", types.TagPatientID, "  12345  ", types.VR_LO, "12345"},
		{"Integer value", types.TagInstanceNumber, 7, types.VR_IS, "7"},
		{"Non-existing tag", types.Tag{Group: 0xFFFF, Element: 0xFFFF}, nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != nil {
				ds.SetElement(tt.tag, tt.vr, tt.value)
			}
			result := ds.GetString(tt.tag)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestDataset_GetFloats(t *testing.T) {
	ds := NewDataset()
	ds.SetFloats(types.TagGraphicData, types.VR_FL, []float64{10.5, 20.25, 30})
	ds.SetString(types.TagNumericValue, types.VR_DS, "0.5432")

	floats := ds.GetFloats(types.TagGraphicData)
	if len(floats) != 3 || floats[0] != 10.5 || floats[1] != 20.25 || floats[2] != 30 {
		t.Errorf("Unexpected graphic data: %v", floats)
	}

	value, ok := ds.GetFloat(types.TagNumericValue)
	if !ok {
		t.Fatal("Expected numeric value to parse")
	}
	if value != 0.5432 {
		t.Errorf("Expected 0.5432, got %v", value)
	}

	if _, ok := ds.GetFloat(types.Tag{Group: 0xFFFF, Element: 0xFFFF}); ok {
		t.Error("Expected no value for missing tag")
	}
}

func TestDataset_Sequences(t *testing.T) {
	item1 := NewDataset()
	item1.SetString(types.TagCodeValue, types.VR_SH, "121071")
	item2 := NewDataset()
	item2.SetString(types.TagCodeValue, types.VR_SH, "121072")

	ds := NewDataset()
	ds.SetSequence(types.TagConceptNameCodeSequence, []*Dataset{item1, item2})

	items := ds.GetSequence(types.TagConceptNameCodeSequence)
	if len(items) != 2 {
		t.Fatalf("Expected 2 sequence items, got %d", len(items))
	}
	if got := items[0].GetString(types.TagCodeValue); got != "121071" {
		t.Errorf("Expected first item code 121071, got %q", got)
	}

	views := ds.Sequence(types.TagConceptNameCodeSequence)
	if len(views) != 2 {
		t.Fatalf("Expected 2 views, got %d", len(views))
	}
	if got := views[1].GetString(types.TagCodeValue); got != "121072" {
		t.Errorf("Expected second view code 121072, got %q", got)
	}

	// Non-sequence tags yield no items
	ds.SetString(types.TagValueType, types.VR_CS, "CODE")
	if items := ds.GetSequence(types.TagValueType); items != nil {
		t.Errorf("Expected nil sequence for scalar tag, got %v", items)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	concept := NewDataset()
	concept.SetString(types.TagCodeValue, types.VR_SH, "121071")
	concept.SetString(types.TagCodingSchemeDesignator, types.VR_SH, "DCM")
	concept.SetString(types.TagCodeMeaning, types.VR_LO, "Finding")

	ds := NewDataset()
	ds.SetString(types.TagSOPClassUID, types.VR_UI, "1.2.840.10008.5.1.4.1.1.88.33")
	ds.SetString(types.TagPatientName, types.VR_PN, "DOE^JANE")
	ds.SetFloats(types.TagGraphicData, types.VR_FL, []float64{1, 2, 3, 4})
	ds.SetSequence(types.TagConceptNameCodeSequence, []*Dataset{concept})

	data, err := MarshalJSON(ds)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	decoded, err := UnmarshalJSON(data)
	if err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}

	if got := decoded.GetString(types.TagSOPClassUID); got != "1.2.840.10008.5.1.4.1.1.88.33" {
		t.Errorf("SOP Class UID mismatch: %q", got)
	}
	if got := decoded.GetString(types.TagPatientName); got != "DOE^JANE" {
		t.Errorf("Patient name mismatch: %q", got)
	}
	floats := decoded.GetFloats(types.TagGraphicData)
	if len(floats) != 4 || floats[3] != 4 {
		t.Errorf("Graphic data mismatch: %v", floats)
	}
	seq := decoded.GetSequence(types.TagConceptNameCodeSequence)
	if len(seq) != 1 {
		t.Fatalf("Expected 1 concept item, got %d", len(seq))
	}
	if got := seq[0].GetString(types.TagCodeMeaning); got != "Finding" {
		t.Errorf("Code meaning mismatch: %q", got)
	}
}

func TestUnmarshalJSON_InvalidTagKey(t *testing.T) {
	if _, err := UnmarshalJSON([]byte(`{"BADKEY": {"vr": "CS"}}`)); err == nil {
		t.Error("Expected error for malformed tag key")
	}
	if _, err := UnmarshalJSON([]byte(`{"0040A04": {"vr": "CS"}}`)); err == nil {
		t.Error("Expected error for short tag key")
	}
}
