package sr

// SRDocument is the immutable aggregate produced by a builder or the
// parser: identifiers, patient/study/series descriptive fields, document
// metadata and the root container. It is produced once and thereafter
// read-only; none of the methods here mutate it.
type SRDocument struct {
	docType DocumentType
	header  DocumentHeader
	root    ContainerValue
}

// DocumentHeader carries the identifier and descriptive fields of an SR
// document. UIDs left empty by the caller are filled with freshly
// generated values at build time.
type DocumentHeader struct {
	SOPClassUID       string
	SOPInstanceUID    string
	StudyInstanceUID  string
	SeriesInstanceUID string
	InstanceNumber    int
	SeriesNumber      int

	PatientID        string
	PatientName      string
	PatientBirthDate string
	PatientSex       string

	StudyDate              string
	StudyTime              string
	StudyID                string
	AccessionNumber        string
	StudyDescription       string
	SeriesDescription      string
	ReferringPhysicianName string
	Manufacturer           string

	Title            *CodedConcept
	CompletionFlag   string
	VerificationFlag string
	PreliminaryFlag  string
	ContentDate      string
	ContentTime      string
}

// NewDocument assembles a document from its parts. Builders and the
// parser are the expected callers.
func NewDocument(docType DocumentType, header DocumentHeader, root ContainerValue) *SRDocument {
	return &SRDocument{docType: docType, header: header, root: root}
}

// DocumentType returns the document family
func (d *SRDocument) DocumentType() DocumentType {
	return d.docType
}

// Header returns a copy of the document header
func (d *SRDocument) Header() DocumentHeader {
	return d.header
}

// Root returns the root container of the content tree
func (d *SRDocument) Root() ContainerValue {
	return d.root
}

// SOPClassUID returns the document's SOP Class UID
func (d *SRDocument) SOPClassUID() string {
	return d.header.SOPClassUID
}

// SOPInstanceUID returns the document's SOP Instance UID
func (d *SRDocument) SOPInstanceUID() string {
	return d.header.SOPInstanceUID
}

// Title returns the document title concept, or nil
func (d *SRDocument) Title() *CodedConcept {
	return d.header.Title
}
