package loan

// DraftInput carries the raw string-typed fields exactly as posted by
// the application form. Nothing in here is trusted until ParseDraft
// has normalized it into a Draft.
type DraftInput struct {
	FullName        string `form:"full_name"`
	IDNumber        string `form:"id_number"`
	PhoneNumber     string `form:"phone_number"`
	StudyType       string `form:"study_type"`
	CollegeName     string `form:"college_name"`
	AdmissionNumber string `form:"admission_number"`
	LoanPurpose     string `form:"loan_purpose"`
	LoanAmount      string `form:"loan_amount"`
}

// Draft is a validated, unpersisted loan application. It travels between
// the form, confirmation and payment steps and is discarded unless the
// payment step commits it.
type Draft struct {
	FullName        string
	IDNumber        string
	PhoneNumber     string
	StudyType       string
	CollegeName     string
	AdmissionNumber string
	LoanPurpose     string
	LoanAmount      float64
}

// StudyTypes and LoanPurposes are closed sets; the form renders them as
// select options and the validator rejects anything outside them.
var StudyTypes = []string{"Diploma", "Degree", "Certificate", "Masters", "PhD", "Other"}

var LoanPurposes = []string{"Medical Emergency", "Fee Payment", "Books and Supplies", "Accommodation", "Others"}
