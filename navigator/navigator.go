// Package navigator provides ordered traversal over SR content trees and
// the SRPath structural addressing language.
package navigator

import "github.com/raster-image/dicomsr/sr"

// NoDepthLimit disables the depth bound on a traversal.
const NoDepthLimit = -1

// DepthFirst returns the descendants of the container in pre-order: each
// node is visited before its children, and a subtree is exhausted before
// the next sibling. The starting container itself is excluded.
//
// maxDepth bounds descent: 0 yields exactly the direct children,
// NoDepthLimit (or any negative value) is unlimited.
func DepthFirst(root sr.ContainerValue, maxDepth int) []*sr.ContentItem {
	var result []*sr.ContentItem
	var descend func(c sr.ContainerValue, depth int)
	descend = func(c sr.ContainerValue, depth int) {
		for _, child := range c.Children {
			result = append(result, child)
			if maxDepth >= 0 && depth >= maxDepth {
				continue
			}
			if nested, ok := child.AsContainer(); ok {
				descend(nested, depth+1)
			}
		}
	}
	descend(root, 0)
	return result
}

// BreadthFirst returns the descendants of the container in level order:
// all depth-1 nodes first (in list order), then all depth-2 nodes, and so
// on. The starting container itself is excluded.
//
// maxDepth follows the same contract as DepthFirst; at 0 both orders
// coincide with the direct child list.
func BreadthFirst(root sr.ContainerValue, maxDepth int) []*sr.ContentItem {
	var result []*sr.ContentItem

	type level struct {
		container sr.ContainerValue
		depth     int
	}
	queue := []level{{container: root, depth: 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range current.container.Children {
			result = append(result, child)
			if maxDepth >= 0 && current.depth >= maxDepth {
				continue
			}
			if nested, ok := child.AsContainer(); ok {
				queue = append(queue, level{container: nested, depth: current.depth + 1})
			}
		}
	}
	return result
}

// Resolve walks an SRPath against a container and returns the addressed
// item. At each component, the children sharing the component's concept
// name are collected in document order and the one at the component's
// index (0 when omitted) is selected. A component with no such child, or
// an index past the last same-named sibling, yields (nil, false) rather
// than an error. The empty path denotes the root container itself and
// resolves to (nil, false) since there is no item for it.
func Resolve(root sr.ContainerValue, path SRPath) (*sr.ContentItem, bool) {
	current := root
	var item *sr.ContentItem
	for _, comp := range path.Components {
		matches := make([]*sr.ContentItem, 0, len(current.Children))
		for _, child := range current.Children {
			if child.ConceptName() == nil || !child.ConceptName().Matches(comp.ConceptName) {
				continue
			}
			if comp.ValueTypeFilter != "" && child.ValueType() != comp.ValueTypeFilter {
				continue
			}
			matches = append(matches, child)
		}
		index := 0
		if comp.HasIndex {
			index = comp.Index
		}
		if index >= len(matches) {
			return nil, false
		}
		item = matches[index]
		if nested, ok := item.AsContainer(); ok {
			current = nested
		} else {
			current = sr.ContainerValue{}
		}
	}
	if item == nil {
		return nil, false
	}
	return item, true
}

// ResolvePath parses a path string and resolves it against the container
// in one step. A malformed path is an error; a well-formed path that
// matches nothing is (nil, false, nil).
func ResolvePath(root sr.ContainerValue, path string) (*sr.ContentItem, bool, error) {
	parsed, err := ParsePath(path)
	if err != nil {
		return nil, false, err
	}
	item, ok := Resolve(root, parsed)
	return item, ok, nil
}
