package types

// DICOM tags used by Structured Report documents, grouped by module.
// See DICOM Part 3, C.17 (SR Document Content) and Part 6 for the registry.

// SOP Common and General Study/Series attributes
var (
	TagSOPClassUID       = Tag{0x0008, 0x0016}
	TagSOPInstanceUID    = Tag{0x0008, 0x0018}
	TagStudyDate         = Tag{0x0008, 0x0020}
	TagContentDate       = Tag{0x0008, 0x0023}
	TagStudyTime         = Tag{0x0008, 0x0030}
	TagContentTime       = Tag{0x0008, 0x0033}
	TagAccessionNumber   = Tag{0x0008, 0x0050}
	TagModality          = Tag{0x0008, 0x0060}
	TagManufacturer      = Tag{0x0008, 0x0070}
	TagReferringPhysName = Tag{0x0008, 0x0090}
	TagStudyDescription  = Tag{0x0008, 0x1030}
	TagSeriesDescription = Tag{0x0008, 0x103E}
	TagStudyInstanceUID  = Tag{0x0020, 0x000D}
	TagSeriesInstanceUID = Tag{0x0020, 0x000E}
	TagStudyID           = Tag{0x0020, 0x0010}
	TagSeriesNumber      = Tag{0x0020, 0x0011}
	TagInstanceNumber    = Tag{0x0020, 0x0013}
)

// Patient attributes
var (
	TagPatientName      = Tag{0x0010, 0x0010}
	TagPatientID        = Tag{0x0010, 0x0020}
	TagPatientBirthDate = Tag{0x0010, 0x0030}
	TagPatientSex       = Tag{0x0010, 0x0040}
)

// Code Sequence attributes (PS3.3 section 8.8)
var (
	TagCodeValue               = Tag{0x0008, 0x0100}
	TagCodingSchemeDesignator  = Tag{0x0008, 0x0102}
	TagCodeMeaning             = Tag{0x0008, 0x0104}
	TagMappingResource         = Tag{0x0008, 0x0105}
	TagContextGroupVersion     = Tag{0x0008, 0x0106}
	TagContextIdentifier       = Tag{0x0008, 0x010F}
)

// Referenced SOP attributes
var (
	TagReferencedSOPClassUID    = Tag{0x0008, 0x1150}
	TagReferencedSOPInstanceUID = Tag{0x0008, 0x1155}
	TagReferencedFrameNumber    = Tag{0x0008, 0x1160}
	TagReferencedSOPSequence    = Tag{0x0008, 0x1199}
	TagReferencedChannels       = Tag{0x0040, 0xA0B0}
)

// SR Document General and Content module attributes
var (
	TagRelationshipType              = Tag{0x0040, 0xA010}
	TagValueType                     = Tag{0x0040, 0xA040}
	TagConceptNameCodeSequence       = Tag{0x0040, 0xA043}
	TagContinuityOfContent           = Tag{0x0040, 0xA050}
	TagTemporalRangeType             = Tag{0x0040, 0xA130}
	TagReferencedSamplePositions     = Tag{0x0040, 0xA132}
	TagReferencedTimeOffsets         = Tag{0x0040, 0xA138}
	TagReferencedDateTime            = Tag{0x0040, 0xA13A}
	TagTextValue                     = Tag{0x0040, 0xA160}
	TagConceptCodeSequence           = Tag{0x0040, 0xA168}
	TagMeasurementUnitsCodeSequence  = Tag{0x0040, 0x08EA}
	TagObservationDateTime           = Tag{0x0040, 0xA032}
	TagDateTimeValue                 = Tag{0x0040, 0xA120}
	TagDateValue                     = Tag{0x0040, 0xA121}
	TagTimeValue                     = Tag{0x0040, 0xA122}
	TagPersonNameValue               = Tag{0x0040, 0xA123}
	TagUIDValue                      = Tag{0x0040, 0xA124}
	TagMeasuredValueSequence         = Tag{0x0040, 0xA300}
	TagNumericValue                  = Tag{0x0040, 0xA30A}
	TagCompletionFlag                = Tag{0x0040, 0xA491}
	TagVerificationFlag              = Tag{0x0040, 0xA493}
	TagPreliminaryFlag               = Tag{0x0040, 0xA496}
	TagContentTemplateSequence       = Tag{0x0040, 0xA504}
	TagContentSequence               = Tag{0x0040, 0xA730}
	TagTemplateIdentifier            = Tag{0x0040, 0xDB00}
)

// Presentation state / spatial coordinate attributes
var (
	TagGraphicData                   = Tag{0x0070, 0x0022}
	TagGraphicType                   = Tag{0x0070, 0x0023}
	TagFrameOfReferenceUID           = Tag{0x0020, 0x0052}
	TagReferencedFrameOfReferenceUID = Tag{0x3006, 0x0024}
)
