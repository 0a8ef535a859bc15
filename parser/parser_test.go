package parser

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raster-image/dicomsr/builder"
	"github.com/raster-image/dicomsr/dicom"
	srerrors "github.com/raster-image/dicomsr/errors"
	"github.com/raster-image/dicomsr/sr"
	"github.com/raster-image/dicomsr/types"
)

func TestRoundTripAllValueTypes(t *testing.T) {
	imageRef := sr.SOPReference{SOPClassUID: types.CTImageStorage, SOPInstanceUID: "1.2.3.10"}
	waveRef := sr.SOPReference{SOPClassUID: types.GeneralECGWaveformStorage, SOPInstanceUID: "1.2.3.11"}
	srRef := sr.SOPReference{SOPClassUID: types.ComprehensiveSRStorage, SOPInstanceUID: "1.2.3.12"}
	units := sr.UnitMillimeter

	observer := sr.NewConcept("121008", sr.SchemeDCM, "Person Observer Name")
	studyUID := sr.NewConcept("110180", sr.SchemeDCM, "Study Instance UID")
	region := sr.NewConcept("111030", sr.SchemeDCM, "Image Region")

	doc, err := builder.New(sr.ComprehensiveSR).
		WithPatientID("PAT-1").
		WithPatientName("Doe^Jane").
		WithPatientBirthDate("19750301").
		WithPatientSex("F").
		WithStudyDate("20260830").
		WithStudyTime("101500").
		WithStudyID("STU-1").
		WithAccessionNumber("ACC-1").
		WithStudyDescription("CT chest").
		WithSeriesDescription("Findings").
		WithReferringPhysicianName("Ref^Doc").
		WithManufacturer("Imaging Labs").
		WithPreliminaryFlag("FINAL").
		WithTitle(sr.NewConcept("18748-4", sr.SchemeLN, "Diagnostic imaging report")).
		AddText(sr.ConceptFinding, "Nodule in right upper lobe.").
		AddCode(sr.ConceptFindingSite, sr.NewConcept("T-28000", sr.SchemeSRT, "Lung")).
		AddNumeric(sr.NewConcept("M-02550", sr.SchemeSRT, "Diameter"), 14.2, &units).
		AddDate(sr.NewConcept("111526", sr.SchemeDCM, "Date of processing"), "20260830").
		AddTime(sr.NewConcept("111527", sr.SchemeDCM, "Time of processing"), "103000").
		AddDateTime(sr.NewConcept("126201", sr.SchemeDCM, "Acquisition DateTime"), "20260830103000").
		AddPersonName(observer, "Smith^Pat").
		AddUIDRef(studyUID, "1.2.3.900").
		AddImageReference(imageRef, 4, 5).
		AddWaveformReference(waveRef, 1, 2).
		AddCompositeReference(srRef).
		AddSCoord(region, sr.GraphicTypePolyline, []float64{1, 2, 3, 4, 1, 2}, &imageRef).
		AddItem(sr.NewTCoordItem(nil, sr.RelationshipContains, sr.TCoordValue{
			RangeType:       sr.TemporalRangeSegment,
			SamplePositions: []int{10, 20},
			TimeOffsets:     []float64{0.5, 1.5},
		})).
		AddSection("Findings",
			sr.NewTextItem(&sr.ConceptFinding, sr.RelationshipContains, "Nested text.")).
		Build()
	require.NoError(t, err)

	parsed, err := New(Config{}).Parse(Encode(doc))
	require.NoError(t, err)

	assert.Equal(t, doc.DocumentType(), parsed.DocumentType())
	assert.Equal(t, doc.Header(), parsed.Header())
	assert.Equal(t, doc.Root(), parsed.Root())
}

func TestRoundTripComprehensive3D(t *testing.T) {
	center := sr.NewConcept("111010", sr.SchemeDCM, "Center")
	doc, err := builder.New(sr.Comprehensive3DSR).
		WithFrameOfReferenceUID("1.2.3.100").
		AddPoint3D(center, 1.5, 2.5, 3.5).
		Build()
	require.NoError(t, err)

	parsed, err := New(Config{}).Parse(Encode(doc))
	require.NoError(t, err)

	assert.Equal(t, sr.Comprehensive3DSR, parsed.DocumentType())
	sc, ok := parsed.Root().Children[0].AsSCoord3D()
	require.True(t, ok)
	assert.Equal(t, "1.2.3.100", sc.FrameOfReferenceUID)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, sc.GraphicData)
}

func TestRoundTripMeasurementReportTemplate(t *testing.T) {
	doc, err := builder.NewMeasurementReport().
		AddMeasurementGroup(builder.MeasurementGroup{
			TrackingIdentifier: "Lesion 1",
			Items: []*sr.ContentItem{
				builder.Measurement(sr.NewConcept("M-02550", sr.SchemeSRT, "Diameter"), 9.75, sr.UnitMillimeter),
			},
		}).
		Build()
	require.NoError(t, err)

	parsed, err := New(Config{}).Parse(Encode(doc))
	require.NoError(t, err)

	assert.Equal(t, "1500", parsed.Root().TemplateID)
	assert.Equal(t, "DCMR", parsed.Root().MappingResource)
	assert.Equal(t, doc.Root(), parsed.Root())
}

func TestParseNumericStringFidelity(t *testing.T) {
	probability := 0.5432
	doc, err := builder.NewMammographyCAD().
		AddFinding(builder.Finding{
			Type:        sr.NewConcept("F-01796", sr.SchemeSRT, "Mammography breast mass"),
			Probability: &probability,
		}).
		Build()
	require.NoError(t, err)

	parsed, err := New(Config{}).Parse(Encode(doc))
	require.NoError(t, err)

	finding, ok := parsed.Root().Children[0].AsContainer()
	require.True(t, ok)
	value, found := finding.MeasurementValue(sr.ConceptProbabilityOfFinding)
	require.True(t, found)
	assert.InDelta(t, 0.5432, value, 1e-4)
}

func TestParseRejectsUnknownSOPClass(t *testing.T) {
	ds := dicom.NewDataset()
	ds.SetString(types.TagSOPClassUID, types.VR_UI, types.CTImageStorage)

	for _, level := range []ValidationLevel{Lenient, Strict} {
		_, err := New(Config{ValidationLevel: level}).Parse(ds)
		require.Error(t, err)
		assert.True(t, errors.Is(err, srerrors.ErrInvalidDocumentType), level.String())
	}
}

func TestStrictRequiresMandatoryHeader(t *testing.T) {
	ds := dicom.NewDataset()
	ds.SetString(types.TagSOPClassUID, types.VR_UI, types.BasicTextSRStorage)
	ds.SetString(types.TagSOPInstanceUID, types.VR_UI, "1.2.3")
	ds.SetString(types.TagStudyInstanceUID, types.VR_UI, "1.2.4")
	ds.SetString(types.TagSeriesInstanceUID, types.VR_UI, "1.2.5")
	ds.SetString(types.TagVerificationFlag, types.VR_CS, "UNVERIFIED")
	// Completion Flag deliberately absent

	_, err := New(Config{ValidationLevel: Strict}).Parse(ds)
	require.Error(t, err)
	assert.True(t, errors.Is(err, srerrors.ErrMissingHeaderField))

	var parseErr *srerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "CompletionFlag", parseErr.Field)

	doc, err := New(Config{ValidationLevel: Lenient}).Parse(ds)
	require.NoError(t, err)
	assert.Empty(t, doc.Header().CompletionFlag)
}

func TestMissingValueTypeFailsBothModes(t *testing.T) {
	item := dicom.NewDataset()
	item.SetString(types.TagRelationshipType, types.VR_CS, "CONTAINS")

	for _, level := range []ValidationLevel{Lenient, Strict} {
		ds := minimalDocument()
		ds.SetSequence(types.TagContentSequence, []*dicom.Dataset{item})

		_, err := New(Config{ValidationLevel: level}).Parse(ds)
		require.Error(t, err, level.String())
		assert.True(t, errors.Is(err, srerrors.ErrMissingValueType), level.String())
	}
}

func TestUnknownValueTypeStrictFailsLenientSkips(t *testing.T) {
	bogus := dicom.NewDataset()
	bogus.SetString(types.TagRelationshipType, types.VR_CS, "CONTAINS")
	bogus.SetString(types.TagValueType, types.VR_CS, "BOGUS")

	text := dicom.NewDataset()
	text.SetString(types.TagRelationshipType, types.VR_CS, "CONTAINS")
	text.SetString(types.TagValueType, types.VR_CS, "TEXT")
	text.SetString(types.TagTextValue, types.VR_UT, "kept")

	ds := minimalDocument()
	ds.SetSequence(types.TagContentSequence, []*dicom.Dataset{bogus, text})

	_, err := New(Config{ValidationLevel: Strict}).Parse(ds)
	require.Error(t, err)
	assert.True(t, errors.Is(err, srerrors.ErrUnknownValueType))

	var buf bytes.Buffer
	doc, err := New(Config{ValidationLevel: Lenient, Logger: zerolog.New(&buf)}).Parse(ds)
	require.NoError(t, err)
	require.Len(t, doc.Root().Children, 1)

	kept, ok := doc.Root().Children[0].AsText()
	require.True(t, ok)
	assert.Equal(t, "kept", kept.Text)
	assert.Contains(t, buf.String(), "unknown value type")
}

func TestParseDepthBound(t *testing.T) {
	leaf := dicom.NewDataset()
	leaf.SetString(types.TagRelationshipType, types.VR_CS, "CONTAINS")
	leaf.SetString(types.TagValueType, types.VR_CS, "TEXT")
	leaf.SetString(types.TagTextValue, types.VR_UT, "deep")

	// two container levels above the leaf
	inner := containerItem([]*dicom.Dataset{leaf})
	outer := containerItem([]*dicom.Dataset{inner})

	ds := minimalDocument()
	ds.SetSequence(types.TagContentSequence, []*dicom.Dataset{outer})

	_, err := New(Config{MaxDepth: 2}).Parse(ds)
	require.Error(t, err)
	assert.True(t, errors.Is(err, srerrors.ErrMaxDepthExceeded))

	var parseErr *srerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Depth)

	doc, err := New(Config{MaxDepth: 3}).Parse(ds)
	require.NoError(t, err)
	require.Len(t, doc.Root().Children, 1)
}

func TestZeroConfigDefaults(t *testing.T) {
	p := New(Config{})
	assert.Equal(t, DefaultMaxDepth, p.cfg.MaxDepth)
	assert.Equal(t, Lenient, p.cfg.ValidationLevel)
}

func minimalDocument() *dicom.Dataset {
	ds := dicom.NewDataset()
	ds.SetString(types.TagSOPClassUID, types.VR_UI, types.ComprehensiveSRStorage)
	ds.SetString(types.TagSOPInstanceUID, types.VR_UI, "1.2.3")
	ds.SetString(types.TagStudyInstanceUID, types.VR_UI, "1.2.4")
	ds.SetString(types.TagSeriesInstanceUID, types.VR_UI, "1.2.5")
	ds.SetString(types.TagCompletionFlag, types.VR_CS, "COMPLETE")
	ds.SetString(types.TagVerificationFlag, types.VR_CS, "UNVERIFIED")
	ds.SetString(types.TagContinuityOfContent, types.VR_CS, "SEPARATE")
	ds.SetString(types.TagValueType, types.VR_CS, "CONTAINER")
	return ds
}

func containerItem(children []*dicom.Dataset) *dicom.Dataset {
	ds := dicom.NewDataset()
	ds.SetString(types.TagRelationshipType, types.VR_CS, "CONTAINS")
	ds.SetString(types.TagValueType, types.VR_CS, "CONTAINER")
	ds.SetString(types.TagContinuityOfContent, types.VR_CS, "SEPARATE")
	ds.SetSequence(types.TagContentSequence, children)
	return ds
}
