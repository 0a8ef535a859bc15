package types

// DICOM SOP Class UIDs as defined in DICOM Part 4, Annex B
// https://dicom.nema.org/medical/dicom/current/output/chtml/part04/sect_B.5.html

// Structured Report Storage SOP Classes
const (
	BasicTextSRStorage           = "1.2.840.10008.5.1.4.1.1.88.11"
	EnhancedSRStorage            = "1.2.840.10008.5.1.4.1.1.88.22"
	ComprehensiveSRStorage       = "1.2.840.10008.5.1.4.1.1.88.33"
	Comprehensive3DSRStorage     = "1.2.840.10008.5.1.4.1.1.88.34"
	KeyObjectSelectionDocStorage = "1.2.840.10008.5.1.4.1.1.88.59"

	MammographyCADSRStorage = "1.2.840.10008.5.1.4.1.1.88.50"
	ChestCADSRStorage       = "1.2.840.10008.5.1.4.1.1.88.65"
)

// Image Storage SOP Classes commonly referenced from SR content
const (
	ComputedRadiographyImageStorage                   = "1.2.840.10008.5.1.4.1.1.1"
	DigitalMammographyXRayImageStorageForPresentation = "1.2.840.10008.5.1.4.1.1.1.2"
	CTImageStorage                                    = "1.2.840.10008.5.1.4.1.1.2"
	EnhancedCTImageStorage                            = "1.2.840.10008.5.1.4.1.1.2.1"
	UltrasoundImageStorage                            = "1.2.840.10008.5.1.4.1.1.6.1"
	MRImageStorage                                    = "1.2.840.10008.5.1.4.1.1.4"
	SecondaryCaptureImageStorage                      = "1.2.840.10008.5.1.4.1.1.7"
	TwelveLeadECGWaveformStorage                      = "1.2.840.10008.5.1.4.1.1.9.1.1"
	GeneralECGWaveformStorage                         = "1.2.840.10008.5.1.4.1.1.9.1.2"
)

// Modality value carried by all SR series
const ModalitySR = "SR"

// IsWaveformStorage returns true if the SOP Class UID identifies a
// waveform storage class.
func IsWaveformStorage(sopClassUID string) bool {
	switch sopClassUID {
	case TwelveLeadECGWaveformStorage, GeneralECGWaveformStorage:
		return true
	default:
		return false
	}
}

// IsSRStorage returns true if the SOP Class UID identifies one of the
// Structured Report storage families handled by this library.
func IsSRStorage(sopClassUID string) bool {
	switch sopClassUID {
	case BasicTextSRStorage, EnhancedSRStorage, ComprehensiveSRStorage,
		Comprehensive3DSRStorage, KeyObjectSelectionDocStorage,
		MammographyCADSRStorage, ChestCADSRStorage:
		return true
	default:
		return false
	}
}
