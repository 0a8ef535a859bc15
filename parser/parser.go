// Package parser decodes SR documents from the DICOM data-set attribute
// model and encodes them back. It is codec-agnostic: any source able to
// present tag-indexed attributes through the data view contract can feed
// it.
package parser

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	srerrors "github.com/raster-image/dicomsr/errors"
	"github.com/raster-image/dicomsr/interfaces"
	"github.com/raster-image/dicomsr/sr"
	"github.com/raster-image/dicomsr/types"
)

// ValidationLevel selects how the parser treats malformed input
type ValidationLevel int

const (
	// Lenient recovers where possible: unknown value types are skipped
	// with a warning and missing non-structural fields are tolerated.
	Lenient ValidationLevel = iota
	// Strict fails on the first deviation
	Strict
)

func (l ValidationLevel) String() string {
	if l == Strict {
		return "strict"
	}
	return "lenient"
}

// DefaultMaxDepth bounds content tree recursion when the configuration
// does not say otherwise.
const DefaultMaxDepth = 64

// Config controls parser behavior
type Config struct {
	ValidationLevel ValidationLevel
	// MaxDepth is the maximum content tree nesting depth; zero or
	// negative selects DefaultMaxDepth.
	MaxDepth int
	Logger   zerolog.Logger
}

// Parser decodes SR documents from data views
type Parser struct {
	cfg      Config
	validate *validator.Validate
}

// New creates a parser. The zero Config gives a lenient parser with the
// default depth bound and no log output.
func New(cfg Config) *Parser {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return &Parser{
		cfg:      cfg,
		validate: validator.New(),
	}
}

// mandatoryHeader is the field set strict mode requires to be present
type mandatoryHeader struct {
	SOPClassUID       string `validate:"required"`
	SOPInstanceUID    string `validate:"required"`
	StudyInstanceUID  string `validate:"required"`
	SeriesInstanceUID string `validate:"required"`
	CompletionFlag    string `validate:"required"`
	VerificationFlag  string `validate:"required"`
}

// Parse decodes a full SR document from the view. The document family is
// resolved from the SOP Class UID; an unrecognized class is rejected in
// both validation modes.
func (p *Parser) Parse(view interfaces.DataView) (*sr.SRDocument, error) {
	sopClassUID := view.GetString(types.TagSOPClassUID)
	docType, ok := sr.DocumentTypeForSOPClass(sopClassUID)
	if !ok {
		return nil, srerrors.NewParseError("SOPClassUID", 0, srerrors.ErrInvalidDocumentType)
	}

	header := p.parseHeader(view)
	header.SOPClassUID = sopClassUID

	if p.cfg.ValidationLevel == Strict {
		if err := p.checkMandatory(header); err != nil {
			return nil, err
		}
	}

	root, err := p.parseRoot(view)
	if err != nil {
		return nil, err
	}
	if title := parseConcept(view.Sequence(types.TagConceptNameCodeSequence)); title != nil {
		header.Title = title
	}

	p.cfg.Logger.Debug().
		Str("sop_class_uid", sopClassUID).
		Str("document_type", docType.String()).
		Int("top_level_items", len(root.Children)).
		Msg("parsed SR document")

	return sr.NewDocument(docType, header, root), nil
}

func (p *Parser) parseHeader(view interfaces.DataView) sr.DocumentHeader {
	header := sr.DocumentHeader{
		SOPInstanceUID:    view.GetString(types.TagSOPInstanceUID),
		StudyInstanceUID:  view.GetString(types.TagStudyInstanceUID),
		SeriesInstanceUID: view.GetString(types.TagSeriesInstanceUID),
		InstanceNumber:    view.GetInt(types.TagInstanceNumber),
		SeriesNumber:      view.GetInt(types.TagSeriesNumber),

		PatientID:        view.GetString(types.TagPatientID),
		PatientName:      view.GetString(types.TagPatientName),
		PatientBirthDate: view.GetString(types.TagPatientBirthDate),
		PatientSex:       view.GetString(types.TagPatientSex),

		StudyDate:              view.GetString(types.TagStudyDate),
		StudyTime:              view.GetString(types.TagStudyTime),
		StudyID:                view.GetString(types.TagStudyID),
		AccessionNumber:        view.GetString(types.TagAccessionNumber),
		StudyDescription:       view.GetString(types.TagStudyDescription),
		SeriesDescription:      view.GetString(types.TagSeriesDescription),
		ReferringPhysicianName: view.GetString(types.TagReferringPhysName),
		Manufacturer:           view.GetString(types.TagManufacturer),

		CompletionFlag:   view.GetString(types.TagCompletionFlag),
		VerificationFlag: view.GetString(types.TagVerificationFlag),
		PreliminaryFlag:  view.GetString(types.TagPreliminaryFlag),
		ContentDate:      view.GetString(types.TagContentDate),
		ContentTime:      view.GetString(types.TagContentTime),
	}

	if p.cfg.ValidationLevel == Lenient {
		if header.SOPInstanceUID == "" {
			p.cfg.Logger.Debug().Msg("missing SOP Instance UID")
		}
		if header.CompletionFlag == "" {
			p.cfg.Logger.Debug().Msg("missing Completion Flag")
		}
	}
	return header
}

func (p *Parser) checkMandatory(header sr.DocumentHeader) error {
	err := p.validate.Struct(mandatoryHeader{
		SOPClassUID:       header.SOPClassUID,
		SOPInstanceUID:    header.SOPInstanceUID,
		StudyInstanceUID:  header.StudyInstanceUID,
		SeriesInstanceUID: header.SeriesInstanceUID,
		CompletionFlag:    header.CompletionFlag,
		VerificationFlag:  header.VerificationFlag,
	})
	if err == nil {
		return nil
	}
	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		return srerrors.NewParseError(fieldErrors[0].Field(), 0, srerrors.ErrMissingHeaderField)
	}
	return srerrors.NewParseError("header", 0, err)
}

// parseRoot decodes the root container, whose attributes live directly in
// the top-level data set rather than in a content sequence item.
func (p *Parser) parseRoot(view interfaces.DataView) (sr.ContainerValue, error) {
	root := sr.ContainerValue{
		Continuous: view.GetString(types.TagContinuityOfContent) == sr.ContinuityContinuous,
	}
	if templates := view.Sequence(types.TagContentTemplateSequence); len(templates) > 0 {
		root.TemplateID = templates[0].GetString(types.TagTemplateIdentifier)
		root.MappingResource = templates[0].GetString(types.TagMappingResource)
	}
	children, err := p.parseItems(view.Sequence(types.TagContentSequence), 1)
	if err != nil {
		return sr.ContainerValue{}, err
	}
	root.Children = children
	return root, nil
}

func (p *Parser) parseItems(views []interfaces.DataView, depth int) ([]*sr.ContentItem, error) {
	var items []*sr.ContentItem
	for _, view := range views {
		item, err := p.parseItem(view, depth)
		if err != nil {
			return nil, err
		}
		if item != nil {
			items = append(items, item)
		}
	}
	return items, nil
}

// parseItem decodes one content item. A nil item with nil error means the
// item was skipped under lenient validation.
func (p *Parser) parseItem(view interfaces.DataView, depth int) (*sr.ContentItem, error) {
	if depth > p.cfg.MaxDepth {
		return nil, srerrors.NewParseError("ContentSequence", depth, srerrors.ErrMaxDepthExceeded)
	}

	raw := view.GetString(types.TagValueType)
	if raw == "" {
		return nil, srerrors.NewParseError("ValueType", depth, srerrors.ErrMissingValueType)
	}
	valueType := sr.ValueType(raw)
	if !valueType.IsValid() {
		if p.cfg.ValidationLevel == Strict {
			return nil, srerrors.NewParseError("ValueType", depth, srerrors.ErrUnknownValueType)
		}
		p.cfg.Logger.Warn().
			Str("value_type", raw).
			Int("depth", depth).
			Msg("skipping content item with unknown value type")
		return nil, nil
	}

	relationship := sr.RelationshipType(view.GetString(types.TagRelationshipType))
	concept := parseConcept(view.Sequence(types.TagConceptNameCodeSequence))

	value, err := p.parseValue(view, valueType, depth)
	if err != nil {
		return nil, err
	}
	return sr.NewContentItem(concept, relationship, value), nil
}

func (p *Parser) parseValue(view interfaces.DataView, valueType sr.ValueType, depth int) (sr.Value, error) {
	switch valueType {
	case sr.ValueTypeText:
		return sr.TextValue{Text: view.GetString(types.TagTextValue)}, nil
	case sr.ValueTypeCode:
		concept := parseConcept(view.Sequence(types.TagConceptCodeSequence))
		if concept == nil {
			concept = &sr.CodedConcept{}
		}
		return sr.CodeValue{Concept: *concept}, nil
	case sr.ValueTypeNum:
		return parseNumeric(view), nil
	case sr.ValueTypeDate:
		return sr.DateValue{Date: view.GetString(types.TagDateValue)}, nil
	case sr.ValueTypeTime:
		return sr.TimeValue{Time: view.GetString(types.TagTimeValue)}, nil
	case sr.ValueTypeDateTime:
		return sr.DateTimeValue{DateTime: view.GetString(types.TagDateTimeValue)}, nil
	case sr.ValueTypePName:
		return sr.PersonNameValue{Name: view.GetString(types.TagPersonNameValue)}, nil
	case sr.ValueTypeUIDRef:
		return sr.UIDRefValue{UID: view.GetString(types.TagUIDValue)}, nil
	case sr.ValueTypeComposite:
		ref, _, _ := parseReference(view)
		return sr.CompositeValue{Ref: ref}, nil
	case sr.ValueTypeImage:
		ref, frames, _ := parseReference(view)
		return sr.ImageValue{Ref: ref, Frames: frames}, nil
	case sr.ValueTypeWaveform:
		ref, _, channels := parseReference(view)
		return sr.WaveformValue{Ref: ref, Channels: channels}, nil
	case sr.ValueTypeSCoord:
		value := sr.SCoordValue{
			GraphicType: sr.GraphicType(view.GetString(types.TagGraphicType)),
			GraphicData: view.GetFloats(types.TagGraphicData),
		}
		if refs := view.Sequence(types.TagReferencedSOPSequence); len(refs) > 0 {
			ref, _, _ := parseReference(view)
			value.ImageRef = &ref
		}
		return value, nil
	case sr.ValueTypeSCoord3D:
		return sr.SCoord3DValue{
			GraphicType:         sr.GraphicType3D(view.GetString(types.TagGraphicType)),
			GraphicData:         view.GetFloats(types.TagGraphicData),
			FrameOfReferenceUID: view.GetString(types.TagReferencedFrameOfReferenceUID),
		}, nil
	case sr.ValueTypeTCoord:
		return sr.TCoordValue{
			RangeType:       sr.TemporalRangeType(view.GetString(types.TagTemporalRangeType)),
			SamplePositions: view.GetInts(types.TagReferencedSamplePositions),
			TimeOffsets:     view.GetFloats(types.TagReferencedTimeOffsets),
			DateTimes:       view.GetStrings(types.TagReferencedDateTime),
		}, nil
	case sr.ValueTypeContainer:
		value := sr.ContainerValue{
			Continuous: view.GetString(types.TagContinuityOfContent) == sr.ContinuityContinuous,
		}
		if templates := view.Sequence(types.TagContentTemplateSequence); len(templates) > 0 {
			value.TemplateID = templates[0].GetString(types.TagTemplateIdentifier)
			value.MappingResource = templates[0].GetString(types.TagMappingResource)
		}
		children, err := p.parseItems(view.Sequence(types.TagContentSequence), depth+1)
		if err != nil {
			return nil, err
		}
		value.Children = children
		return value, nil
	}
	return nil, srerrors.NewParseError("ValueType", depth, srerrors.ErrUnknownValueType)
}

// parseConcept decodes the first item of a code sequence, or nil
func parseConcept(views []interfaces.DataView) *sr.CodedConcept {
	if len(views) == 0 {
		return nil
	}
	item := views[0]
	concept := sr.CodedConcept{
		CodeValue:              item.GetString(types.TagCodeValue),
		CodingSchemeDesignator: item.GetString(types.TagCodingSchemeDesignator),
		CodeMeaning:            item.GetString(types.TagCodeMeaning),
	}
	if concept.IsZero() {
		return nil
	}
	return &concept
}

// parseNumeric decodes a NUM payload: values are gathered across all
// measured value items, units come from the first.
func parseNumeric(view interfaces.DataView) sr.NumericValue {
	value := sr.NumericValue{}
	for i, measured := range view.Sequence(types.TagMeasuredValueSequence) {
		value.Values = append(value.Values, measured.GetFloats(types.TagNumericValue)...)
		if i == 0 {
			value.Units = parseConcept(measured.Sequence(types.TagMeasurementUnitsCodeSequence))
		}
	}
	return value
}

// parseReference decodes the first referenced SOP sequence item of a
// reference-valued content item, plus its frame and channel selections.
func parseReference(view interfaces.DataView) (ref sr.SOPReference, frames []int, channels []int) {
	refs := view.Sequence(types.TagReferencedSOPSequence)
	if len(refs) == 0 {
		return ref, nil, nil
	}
	item := refs[0]
	ref.SOPClassUID = item.GetString(types.TagReferencedSOPClassUID)
	ref.SOPInstanceUID = item.GetString(types.TagReferencedSOPInstanceUID)
	frames = item.GetInts(types.TagReferencedFrameNumber)
	channels = item.GetInts(types.TagReferencedChannels)
	return ref, frames, channels
}
