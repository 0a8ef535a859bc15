package sr

import "testing"

// testTree builds a small tree:
//
//	root
//	├── Findings (CONTAINER)
//	│   ├── Finding (TEXT)
//	│   └── Measurement Group (CONTAINER)
//	│       ├── Length (NUM 12.5 mm)
//	│       └── Severity (CODE)
//	└── Impression (TEXT)
func testTree() ContainerValue {
	findingConcept := NewConcept("121071", "DCM", "Finding")
	lengthConcept := NewConcept("410668003", "SRT", "Length")
	severityConcept := NewConcept("246112005", "SRT", "Severity")
	findingsConcept := NewConcept("FINDINGS", SchemeSectionHeading, "Findings")
	groupConcept := ConceptMeasurementGroup
	impressionConcept := NewConcept("IMPRESSION", SchemeSectionHeading, "Impression")

	group := NewContainerItem(&groupConcept, RelationshipContains, []*ContentItem{
		NewNumericItem(&lengthConcept, RelationshipContains, 12.5, &UnitMillimeter),
		NewCodeItem(&severityConcept, RelationshipHasProperties, NewConcept("24484000", "SRT", "Severe")),
	})
	findings := NewContainerItem(&findingsConcept, RelationshipContains, []*ContentItem{
		NewTextItem(&findingConcept, RelationshipContains, "mass in upper lobe"),
		group,
	})
	impression := NewTextItem(&impressionConcept, RelationshipContains, "follow-up advised")

	return ContainerValue{Children: []*ContentItem{findings, impression}}
}

func TestContainer_ItemAt(t *testing.T) {
	root := testTree()

	if item := root.ItemAt(0); item == nil || !item.ConceptName().Matches("Findings") {
		t.Error("Expected Findings container at index 0")
	}
	if item := root.ItemAt(1); item == nil || item.ValueType() != ValueTypeText {
		t.Error("Expected Impression text at index 1")
	}
	if root.ItemAt(-1) != nil {
		t.Error("Negative index must yield nil")
	}
	if root.ItemAt(2) != nil {
		t.Error("Out-of-range index must yield nil")
	}
}

func TestContainer_ChildAndFind(t *testing.T) {
	root := testTree()

	// Non-recursive: Finding is not a direct child of the root
	if root.Child("Finding") != nil {
		t.Error("Child must not descend into subtrees")
	}
	if root.Child("Impression") == nil {
		t.Error("Expected direct child Impression")
	}

	// Recursive lookup descends depth-first
	found := root.Find("Finding")
	if found == nil {
		t.Fatal("Expected recursive lookup to find Finding")
	}
	if found.ValueType() != ValueTypeText {
		t.Errorf("Expected TEXT item, got %s", found.ValueType())
	}

	// Code-value fallback match
	if root.Find("121071") == nil {
		t.Error("Expected fallback match on code value")
	}
	if root.Find("Nonexistent") != nil {
		t.Error("Expected nil for unknown concept")
	}
}

func TestContainer_ChildrenOfType(t *testing.T) {
	root := testTree()

	// Direct children only
	direct := root.ChildrenOfType(ValueTypeContainer, false)
	if len(direct) != 1 {
		t.Fatalf("Expected 1 direct container, got %d", len(direct))
	}

	// Recursive, document order
	all := root.ChildrenOfType(ValueTypeContainer, true)
	if len(all) != 2 {
		t.Fatalf("Expected 2 containers recursively, got %d", len(all))
	}
	if !all[0].ConceptName().Matches("Findings") {
		t.Error("Expected Findings before Measurement Group in document order")
	}

	texts := root.ChildrenOfType(ValueTypeText, true)
	if len(texts) != 2 {
		t.Fatalf("Expected 2 text items, got %d", len(texts))
	}
	if got, _ := texts[0].AsText(); got.Text != "mass in upper lobe" {
		t.Errorf("Document order violated, first text is %q", got.Text)
	}
}

func TestContainer_FindItemsByRelationship(t *testing.T) {
	root := testTree()

	props := root.FindItemsByRelationship(RelationshipHasProperties, true)
	if len(props) != 1 {
		t.Fatalf("Expected 1 HAS PROPERTIES item, got %d", len(props))
	}
	if props[0].ValueType() != ValueTypeCode {
		t.Errorf("Expected CODE item, got %s", props[0].ValueType())
	}

	if got := root.FindItemsByRelationship(RelationshipHasProperties, false); len(got) != 0 {
		t.Errorf("Non-recursive search must not descend, got %d items", len(got))
	}
}

func TestContainer_Measurements(t *testing.T) {
	root := testTree()

	measurements := root.FindMeasurements()
	if len(measurements) != 1 {
		t.Fatalf("Expected 1 measurement, got %d", len(measurements))
	}

	groups := root.FindMeasurementGroups()
	if len(groups) != 1 {
		t.Fatalf("Expected 1 measurement group, got %d", len(groups))
	}
	if !groups[0].ConceptName().Equals(ConceptMeasurementGroup) {
		t.Error("Unexpected group concept")
	}

	length := NewConcept("410668003", "SRT", "Length")
	value, ok := root.MeasurementValue(length)
	if !ok {
		t.Fatal("Expected measurement value for Length")
	}
	if value != 12.5 {
		t.Errorf("Expected 12.5, got %v", value)
	}

	if _, ok := root.MeasurementValue(NewConcept("x", "y", "z")); ok {
		t.Error("Expected absent value for unknown concept")
	}
}

func TestContainer_FindItemsPredicate(t *testing.T) {
	root := testTree()

	numsAndCodes := root.FindItems(func(item *ContentItem) bool {
		return item.ValueType() == ValueTypeNum || item.ValueType() == ValueTypeCode
	}, true)
	if len(numsAndCodes) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(numsAndCodes))
	}
	// Document order: Length precedes Severity
	if numsAndCodes[0].ValueType() != ValueTypeNum {
		t.Error("Expected NUM before CODE in document order")
	}
}
