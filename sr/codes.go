package sr

// DICOM controlled terminology concepts used by the template builders and
// extraction views. Codes are from the DCM scheme (PS3.16 Annex D) unless
// noted otherwise.

// Document titles
var (
	ConceptImagingMeasurementReport = NewConcept("126000", SchemeDCM, "Imaging Measurement Report")
	ConceptMammographyCADReport     = NewConcept("111036", SchemeDCM, "Mammography CAD Report")
	ConceptChestCADReport           = NewConcept("112000", SchemeDCM, "Chest CAD Report")
)

// Observation context
var (
	ConceptLanguageOfContent = NewConcept("121049", SchemeDCM, "Language of Content Item and Descendants")
	ConceptProcedureReported = NewConcept("121058", SchemeDCM, "Procedure reported")
	ConceptFinding           = NewConcept("121071", SchemeDCM, "Finding")
	ConceptImpression        = NewConcept("121073", SchemeDCM, "Impression")
	ConceptFindingSite       = NewConcept("G-C0E3", SchemeSRT, "Finding Site")
)

// TID 1500 Measurement Report structure
var (
	ConceptImageLibrary        = NewConcept("111028", SchemeDCM, "Image Library")
	ConceptImagingMeasurements = NewConcept("126010", SchemeDCM, "Imaging Measurements")
	ConceptMeasurementGroup    = NewConcept("125007", SchemeDCM, "Measurement Group")
	ConceptTrackingIdentifier  = NewConcept("112039", SchemeDCM, "Tracking Identifier")
	ConceptTrackingUID         = NewConcept("112040", SchemeDCM, "Tracking Unique Identifier")
)

// CAD SR structure
var (
	ConceptCADProcessingSummary  = NewConcept("111012", SchemeDCM, "CAD Processing and Findings Summary")
	ConceptAlgorithmName         = NewConcept("111001", SchemeDCM, "Algorithm Name")
	ConceptAlgorithmVersion      = NewConcept("111003", SchemeDCM, "Algorithm Version")
	ConceptAlgorithmManufacturer = NewConcept("121013", SchemeDCM, "Device Observer Manufacturer")
	ConceptSingleImageFinding    = NewConcept("111059", SchemeDCM, "Single Image Finding")
	ConceptProbabilityOfFinding  = NewConcept("111047", SchemeDCM, "Probability of Malignancy")
	ConceptFindingLocation       = NewConcept("111010", SchemeDCM, "Center")
)

// Key Object Selection purpose-of-reference titles (CID 7010)
var (
	ConceptOfInterest               = NewConcept("113000", SchemeDCM, "Of Interest")
	ConceptRejectedForQuality       = NewConcept("113001", SchemeDCM, "Rejected for Quality Reasons")
	ConceptForReferringProvider     = NewConcept("113002", SchemeDCM, "For Referring Provider")
	ConceptForSurgery               = NewConcept("113003", SchemeDCM, "For Surgery")
	ConceptForTeaching              = NewConcept("113004", SchemeDCM, "For Teaching")
	ConceptForConference            = NewConcept("113005", SchemeDCM, "For Conference")
	ConceptForTherapy               = NewConcept("113006", SchemeDCM, "For Therapy")
	ConceptForPatient               = NewConcept("113007", SchemeDCM, "For Patient")
	ConceptForPeerReview            = NewConcept("113008", SchemeDCM, "For Peer Review")
	ConceptForResearch              = NewConcept("113009", SchemeDCM, "For Research")
	ConceptQualityIssue             = NewConcept("113010", SchemeDCM, "Quality Issue")
	ConceptBestInSet                = NewConcept("113013", SchemeDCM, "Best In Set")
	ConceptKeyObjectDescription     = NewConcept("113012", SchemeDCM, "Key Object Description")
)

// Common measurement units (UCUM)
var (
	UnitMillimeter      = NewConcept("mm", SchemeUCUM, "millimeter")
	UnitSquareMM        = NewConcept("mm2", SchemeUCUM, "square millimeter")
	UnitCubicMM         = NewConcept("mm3", SchemeUCUM, "cubic millimeter")
	UnitNoUnits         = NewConcept("1", SchemeUCUM, "no units")
	UnitPercent         = NewConcept("%", SchemeUCUM, "percent")
	UnitHounsfieldUnits = NewConcept("[hnsf'U]", SchemeUCUM, "Hounsfield unit")
)
