package types

type NavbarData struct {
	IsAuthenticated bool
	UserID          string
	UserEmail       string
	UserName        string
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Title  string
	Navbar NavbarData
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

type HomePageData struct {
	BasePageData
	Notice string
	Error  string
}

type LoginPageData struct {
	BasePageData
	Message string
	Error   string
	Email   string
}

type RegisterPageData struct {
	BasePageData
	GivenName   string
	FamilyName  string
	Email       string
	Error       string
	FieldErrors map[string]string
}

type ConfirmRegisterPageData struct {
	BasePageData
	Email   string
	Error   string
	Message string
}

type DashboardPageData struct {
	BasePageData
	WelcomeName  string
	Notice       string
	WhatsAppURL  string
	SupportEmail string
}

type ApplyPageData struct {
	BasePageData
	Error        string
	Form         ApplyFormValues
	StudyTypes   []string
	LoanPurposes []string
}

// ApplyFormValues echoes raw input back into the form so a validation
// failure never wipes what the applicant already typed.
type ApplyFormValues struct {
	FullName        string
	IDNumber        string
	PhoneNumber     string
	StudyType       string
	CollegeName     string
	AdmissionNumber string
	LoanPurpose     string
	LoanAmount      string
}

type ConfirmPageData struct {
	BasePageData
	FullName        string
	IDNumber        string
	PhoneNumber     string
	StudyType       string
	CollegeName     string
	AdmissionNumber string
	LoanPurpose     string
	LoanAmount      string
}

type PaymentPageData struct {
	BasePageData
	Error      string
	TillNumber string
	ServiceFee string
	MpesaCode  string
}

type SuccessPageData struct {
	BasePageData
}

type StatusCard struct {
	FullName    string
	AppliedOn   string
	LoanAmount  string
	LoanPurpose string
	Status      ApplicationStatus
	BadgeTone   string
	BadgeIcon   string
}

type StatusPageData struct {
	BasePageData
	Applications    []StatusCard
	HasApplications bool
}
