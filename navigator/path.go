package navigator

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	srerrors "github.com/raster-image/dicomsr/errors"
	"github.com/raster-image/dicomsr/sr"
)

// PathComponent is one step of an SRPath: a concept-name token with an
// optional sibling index. ValueTypeFilter narrows matching to one value
// type; it has no textual form and is only set programmatically.
type PathComponent struct {
	ConceptName     string
	Index           int
	HasIndex        bool
	ValueTypeFilter sr.ValueType
}

// SRPath is an ordered component list addressing one item of a content
// tree. The empty component list denotes the root.
type SRPath struct {
	Components []PathComponent
}

// pathGrammar is the participle grammar for SR paths.
// Examples: "/Findings", "/Finding[1]/Measurement[0]", "/Image Library/IMAGE[2]"
//
//nolint:govet // participle grammar tags are not standard struct tags
type pathGrammar struct {
	Components []*componentGrammar `( "/" @@ )+`
}

//nolint:govet // participle grammar tags are not standard struct tags
type componentGrammar struct {
	Concept string `@(Concept | Int)`
	Index   *int   `( "[" @Int "]" )?`
}

// pathLexer tokenizes SR path strings. Concept tokens run to the next
// separator, so concept names may contain spaces.
var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Concept", Pattern: `[^/\[\]]+`},
	{Name: "Punct", Pattern: `[/\[\]]`},
})

var pathParser = participle.MustBuild[pathGrammar](
	participle.Lexer(pathLexer),
)

// ParsePath parses an SR path string. The empty string is the root path.
// A malformed string (empty component, non-numeric index, missing leading
// separator) raises a *errors.PathError immediately, independent of any
// tree.
func ParsePath(s string) (SRPath, error) {
	if s == "" {
		return SRPath{}, nil
	}
	if !strings.HasPrefix(s, "/") {
		return SRPath{}, srerrors.NewPathError(s, "path must start with '/'")
	}

	parsed, err := pathParser.ParseString("", s)
	if err != nil {
		return SRPath{}, srerrors.NewPathError(s, err.Error())
	}

	path := SRPath{Components: make([]PathComponent, 0, len(parsed.Components))}
	for _, comp := range parsed.Components {
		pc := PathComponent{ConceptName: comp.Concept}
		if comp.Index != nil {
			pc.Index = *comp.Index
			pc.HasIndex = true
		}
		path.Components = append(path.Components, pc)
	}
	return path, nil
}

// String reconstructs the path string exactly as parsed: the bracketed
// index is omitted only when it was not supplied. The root path prints as
// the empty string.
func (p SRPath) String() string {
	var b strings.Builder
	for _, comp := range p.Components {
		b.WriteByte('/')
		b.WriteString(comp.ConceptName)
		if comp.HasIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(comp.Index))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// IsRoot reports whether the path denotes the root container
func (p SRPath) IsRoot() bool {
	return len(p.Components) == 0
}

// Parent strips the last component. The root path has no parent.
func (p SRPath) Parent() (SRPath, bool) {
	if p.IsRoot() {
		return SRPath{}, false
	}
	parent := SRPath{Components: make([]PathComponent, len(p.Components)-1)}
	copy(parent.Components, p.Components[:len(p.Components)-1])
	return parent, true
}

// Child returns a new path extended by one component
func (p SRPath) Child(component PathComponent) SRPath {
	components := make([]PathComponent, len(p.Components), len(p.Components)+1)
	copy(components, p.Components)
	return SRPath{Components: append(components, component)}
}
