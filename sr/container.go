package sr

// Tree operations over a container's ordered children. All recursive
// lookups run in depth-first pre-order, so results preserve document order.

// ItemAt returns the direct child at the given position, or nil when the
// index is negative or out of range. No error is raised.
func (c ContainerValue) ItemAt(index int) *ContentItem {
	if index < 0 || index >= len(c.Children) {
		return nil
	}
	return c.Children[index]
}

// Child returns the first direct child whose concept name matches the
// lookup string (code meaning first, code value as fallback), or nil.
func (c ContainerValue) Child(name string) *ContentItem {
	for _, child := range c.Children {
		if child.concept != nil && child.concept.Matches(name) {
			return child
		}
	}
	return nil
}

// Find returns the first item in the whole subtree whose concept name
// matches the lookup string, in document order, or nil.
func (c ContainerValue) Find(name string) *ContentItem {
	var found *ContentItem
	c.walk(func(item *ContentItem) bool {
		if item.concept != nil && item.concept.Matches(name) {
			found = item
			return false
		}
		return true
	})
	return found
}

// ChildrenOfType returns the items of the given value type. When recursive
// is true the whole subtree is searched; otherwise only direct children.
func (c ContainerValue) ChildrenOfType(vt ValueType, recursive bool) []*ContentItem {
	return c.collect(recursive, func(item *ContentItem) bool {
		return item.ValueType() == vt
	})
}

// ChildrenWithConcept returns the items carrying the exact concept name.
func (c ContainerValue) ChildrenWithConcept(concept CodedConcept, recursive bool) []*ContentItem {
	return c.collect(recursive, func(item *ContentItem) bool {
		return item.concept != nil && item.concept.Equals(concept)
	})
}

// FindItemsByRelationship returns the items carrying the relationship.
func (c ContainerValue) FindItemsByRelationship(rel RelationshipType, recursive bool) []*ContentItem {
	return c.collect(recursive, func(item *ContentItem) bool {
		return item.relationship == rel
	})
}

// FindItems returns the items satisfying the predicate.
func (c ContainerValue) FindItems(pred func(*ContentItem) bool, recursive bool) []*ContentItem {
	return c.collect(recursive, pred)
}

// FindMeasurements returns every NUM item in the subtree, in document order.
func (c ContainerValue) FindMeasurements() []*ContentItem {
	return c.ChildrenOfType(ValueTypeNum, true)
}

// FindMeasurementGroups returns every container in the subtree that holds
// at least one direct NUM child, the conventional shape of a measurement
// grouping.
func (c ContainerValue) FindMeasurementGroups() []*ContentItem {
	return c.collect(true, func(item *ContentItem) bool {
		group, ok := item.AsContainer()
		if !ok {
			return false
		}
		for _, child := range group.Children {
			if child.ValueType() == ValueTypeNum {
				return true
			}
		}
		return false
	})
}

// MeasurementValue returns the scalar value of the first NUM item carrying
// the given concept name, searching the whole subtree.
func (c ContainerValue) MeasurementValue(concept CodedConcept) (float64, bool) {
	for _, item := range c.FindMeasurements() {
		if item.concept != nil && item.concept.Equals(concept) {
			num, _ := item.AsNumeric()
			return num.Value(), true
		}
	}
	return 0, false
}

// collect gathers matching items in document order. The non-recursive form
// restricts to direct children.
func (c ContainerValue) collect(recursive bool, pred func(*ContentItem) bool) []*ContentItem {
	var result []*ContentItem
	if !recursive {
		for _, child := range c.Children {
			if pred(child) {
				result = append(result, child)
			}
		}
		return result
	}
	c.walk(func(item *ContentItem) bool {
		if pred(item) {
			result = append(result, item)
		}
		return true
	})
	return result
}

// walk visits the subtree in depth-first pre-order, excluding the
// container itself. The visitor returns false to stop early.
func (c ContainerValue) walk(visit func(*ContentItem) bool) bool {
	for _, child := range c.Children {
		if !visit(child) {
			return false
		}
		if nested, ok := child.AsContainer(); ok {
			if !nested.walk(visit) {
				return false
			}
		}
	}
	return true
}
