package builder

import "github.com/raster-image/dicomsr/sr"

// A template skeleton describes the mandated child structure of a
// specialized document as data: an ordered slot list that build() merges
// accumulated user content into. Keeping the structure declarative keeps
// the per-template builders free of document-type branching.
type skeleton struct {
	templateID      string
	mappingResource string
	slots           []slot
}

// slot produces zero or more items for its position in the root child
// list. A slot producing nothing is simply skipped.
type slot func() []*sr.ContentItem

// assemble evaluates the slots in order and returns the merged root
// payload, tagged with the skeleton's template identification.
func (s skeleton) assemble() sr.ContainerValue {
	var children []*sr.ContentItem
	for _, produce := range s.slots {
		children = append(children, produce()...)
	}
	return sr.ContainerValue{
		Children:        children,
		TemplateID:      s.templateID,
		MappingResource: s.mappingResource,
	}
}
