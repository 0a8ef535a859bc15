package parser

import (
	"github.com/raster-image/dicomsr/dicom"
	"github.com/raster-image/dicomsr/sr"
	"github.com/raster-image/dicomsr/types"
)

// Encode renders a document into the DICOM data-set attribute model, the
// exact inverse of Parse: parsing an encoded document yields an equal
// document.
func Encode(doc *sr.SRDocument) *dicom.Dataset {
	ds := dicom.NewDataset()
	header := doc.Header()

	ds.SetString(types.TagSOPClassUID, types.VR_UI, header.SOPClassUID)
	ds.SetString(types.TagSOPInstanceUID, types.VR_UI, header.SOPInstanceUID)
	setIfPresent(ds, types.TagStudyDate, types.VR_DA, header.StudyDate)
	setIfPresent(ds, types.TagContentDate, types.VR_DA, header.ContentDate)
	setIfPresent(ds, types.TagStudyTime, types.VR_TM, header.StudyTime)
	setIfPresent(ds, types.TagContentTime, types.VR_TM, header.ContentTime)
	setIfPresent(ds, types.TagAccessionNumber, types.VR_SH, header.AccessionNumber)
	ds.SetString(types.TagModality, types.VR_CS, types.ModalitySR)
	setIfPresent(ds, types.TagManufacturer, types.VR_LO, header.Manufacturer)
	setIfPresent(ds, types.TagReferringPhysName, types.VR_PN, header.ReferringPhysicianName)
	setIfPresent(ds, types.TagStudyDescription, types.VR_LO, header.StudyDescription)
	setIfPresent(ds, types.TagSeriesDescription, types.VR_LO, header.SeriesDescription)

	setIfPresent(ds, types.TagPatientName, types.VR_PN, header.PatientName)
	setIfPresent(ds, types.TagPatientID, types.VR_LO, header.PatientID)
	setIfPresent(ds, types.TagPatientBirthDate, types.VR_DA, header.PatientBirthDate)
	setIfPresent(ds, types.TagPatientSex, types.VR_CS, header.PatientSex)

	ds.SetString(types.TagStudyInstanceUID, types.VR_UI, header.StudyInstanceUID)
	ds.SetString(types.TagSeriesInstanceUID, types.VR_UI, header.SeriesInstanceUID)
	setIfPresent(ds, types.TagStudyID, types.VR_SH, header.StudyID)
	ds.SetInt(types.TagSeriesNumber, types.VR_IS, header.SeriesNumber)
	ds.SetInt(types.TagInstanceNumber, types.VR_IS, header.InstanceNumber)

	root := doc.Root()
	ds.SetString(types.TagValueType, types.VR_CS, string(sr.ValueTypeContainer))
	if header.Title != nil {
		ds.SetSequence(types.TagConceptNameCodeSequence, []*dicom.Dataset{encodeConcept(*header.Title)})
	}
	ds.SetString(types.TagContinuityOfContent, types.VR_CS, continuity(root.Continuous))
	if root.TemplateID != "" {
		ds.SetSequence(types.TagContentTemplateSequence, []*dicom.Dataset{encodeTemplate(root)})
	}

	ds.SetString(types.TagCompletionFlag, types.VR_CS, header.CompletionFlag)
	ds.SetString(types.TagVerificationFlag, types.VR_CS, header.VerificationFlag)
	setIfPresent(ds, types.TagPreliminaryFlag, types.VR_CS, header.PreliminaryFlag)

	if len(root.Children) > 0 {
		ds.SetSequence(types.TagContentSequence, encodeItems(root.Children))
	}
	return ds
}

func setIfPresent(ds *dicom.Dataset, tag types.Tag, vr, value string) {
	if value != "" {
		ds.SetString(tag, vr, value)
	}
}

func continuity(continuous bool) string {
	if continuous {
		return sr.ContinuityContinuous
	}
	return sr.ContinuitySeparate
}

func encodeItems(items []*sr.ContentItem) []*dicom.Dataset {
	encoded := make([]*dicom.Dataset, len(items))
	for i, item := range items {
		encoded[i] = encodeItem(item)
	}
	return encoded
}

func encodeItem(item *sr.ContentItem) *dicom.Dataset {
	ds := dicom.NewDataset()
	if rel := item.Relationship(); rel != "" {
		ds.SetString(types.TagRelationshipType, types.VR_CS, string(rel))
	}
	ds.SetString(types.TagValueType, types.VR_CS, string(item.ValueType()))
	if concept := item.ConceptName(); concept != nil {
		ds.SetSequence(types.TagConceptNameCodeSequence, []*dicom.Dataset{encodeConcept(*concept)})
	}
	encodeValue(ds, item)
	return ds
}

func encodeValue(ds *dicom.Dataset, item *sr.ContentItem) {
	switch item.ValueType() {
	case sr.ValueTypeText:
		value, _ := item.AsText()
		ds.SetString(types.TagTextValue, types.VR_UT, value.Text)
	case sr.ValueTypeCode:
		value, _ := item.AsCode()
		ds.SetSequence(types.TagConceptCodeSequence, []*dicom.Dataset{encodeConcept(value.Concept)})
	case sr.ValueTypeNum:
		value, _ := item.AsNumeric()
		measured := dicom.NewDataset()
		measured.SetFloats(types.TagNumericValue, types.VR_DS, value.Values)
		if value.Units != nil {
			measured.SetSequence(types.TagMeasurementUnitsCodeSequence, []*dicom.Dataset{encodeConcept(*value.Units)})
		}
		ds.SetSequence(types.TagMeasuredValueSequence, []*dicom.Dataset{measured})
	case sr.ValueTypeDate:
		value, _ := item.AsDate()
		ds.SetString(types.TagDateValue, types.VR_DA, value.Date)
	case sr.ValueTypeTime:
		value, _ := item.AsTime()
		ds.SetString(types.TagTimeValue, types.VR_TM, value.Time)
	case sr.ValueTypeDateTime:
		value, _ := item.AsDateTime()
		ds.SetString(types.TagDateTimeValue, types.VR_DT, value.DateTime)
	case sr.ValueTypePName:
		value, _ := item.AsPersonName()
		ds.SetString(types.TagPersonNameValue, types.VR_PN, value.Name)
	case sr.ValueTypeUIDRef:
		value, _ := item.AsUIDRef()
		ds.SetString(types.TagUIDValue, types.VR_UI, value.UID)
	case sr.ValueTypeComposite:
		value, _ := item.AsComposite()
		ds.SetSequence(types.TagReferencedSOPSequence, []*dicom.Dataset{encodeReference(value.Ref, nil, nil)})
	case sr.ValueTypeImage:
		value, _ := item.AsImage()
		ds.SetSequence(types.TagReferencedSOPSequence, []*dicom.Dataset{encodeReference(value.Ref, value.Frames, nil)})
	case sr.ValueTypeWaveform:
		value, _ := item.AsWaveform()
		ds.SetSequence(types.TagReferencedSOPSequence, []*dicom.Dataset{encodeReference(value.Ref, nil, value.Channels)})
	case sr.ValueTypeSCoord:
		value, _ := item.AsSCoord()
		ds.SetString(types.TagGraphicType, types.VR_CS, string(value.GraphicType))
		ds.SetFloats(types.TagGraphicData, types.VR_FL, value.GraphicData)
		if value.ImageRef != nil {
			ds.SetSequence(types.TagReferencedSOPSequence, []*dicom.Dataset{encodeReference(*value.ImageRef, nil, nil)})
		}
	case sr.ValueTypeSCoord3D:
		value, _ := item.AsSCoord3D()
		ds.SetString(types.TagGraphicType, types.VR_CS, string(value.GraphicType))
		ds.SetFloats(types.TagGraphicData, types.VR_FL, value.GraphicData)
		setIfPresent(ds, types.TagReferencedFrameOfReferenceUID, types.VR_UI, value.FrameOfReferenceUID)
	case sr.ValueTypeTCoord:
		value, _ := item.AsTCoord()
		ds.SetString(types.TagTemporalRangeType, types.VR_CS, string(value.RangeType))
		if len(value.SamplePositions) > 0 {
			ds.SetInts(types.TagReferencedSamplePositions, types.VR_UL, value.SamplePositions)
		}
		if len(value.TimeOffsets) > 0 {
			ds.SetFloats(types.TagReferencedTimeOffsets, types.VR_DS, value.TimeOffsets)
		}
		if len(value.DateTimes) > 0 {
			ds.SetStrings(types.TagReferencedDateTime, types.VR_DT, value.DateTimes)
		}
	case sr.ValueTypeContainer:
		value, _ := item.AsContainer()
		ds.SetString(types.TagContinuityOfContent, types.VR_CS, continuity(value.Continuous))
		if value.TemplateID != "" {
			ds.SetSequence(types.TagContentTemplateSequence, []*dicom.Dataset{encodeTemplate(value)})
		}
		if len(value.Children) > 0 {
			ds.SetSequence(types.TagContentSequence, encodeItems(value.Children))
		}
	}
}

func encodeConcept(concept sr.CodedConcept) *dicom.Dataset {
	ds := dicom.NewDataset()
	ds.SetString(types.TagCodeValue, types.VR_SH, concept.CodeValue)
	ds.SetString(types.TagCodingSchemeDesignator, types.VR_SH, concept.CodingSchemeDesignator)
	ds.SetString(types.TagCodeMeaning, types.VR_LO, concept.CodeMeaning)
	return ds
}

func encodeReference(ref sr.SOPReference, frames, channels []int) *dicom.Dataset {
	ds := dicom.NewDataset()
	ds.SetString(types.TagReferencedSOPClassUID, types.VR_UI, ref.SOPClassUID)
	ds.SetString(types.TagReferencedSOPInstanceUID, types.VR_UI, ref.SOPInstanceUID)
	if len(frames) > 0 {
		ds.SetInts(types.TagReferencedFrameNumber, types.VR_IS, frames)
	}
	if len(channels) > 0 {
		ds.SetInts(types.TagReferencedChannels, types.VR_US, channels)
	}
	return ds
}

func encodeTemplate(container sr.ContainerValue) *dicom.Dataset {
	ds := dicom.NewDataset()
	resource := container.MappingResource
	if resource == "" {
		resource = "DCMR"
	}
	ds.SetString(types.TagMappingResource, types.VR_CS, resource)
	ds.SetString(types.TagTemplateIdentifier, types.VR_CS, container.TemplateID)
	return ds
}
