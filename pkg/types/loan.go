package types

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "Pending"
	ApplicationStatusUnderReview ApplicationStatus = "Under Review"
	ApplicationStatusApproved    ApplicationStatus = "Approved"
	ApplicationStatusDisbursed   ApplicationStatus = "Disbursed"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
)

// LoanApplication is the durable row written once at payment submission.
// Status is only ever changed by operations staff, never by this app.
type LoanApplication struct {
	ID              string            `db:"id"`
	UserID          string            `db:"user_id"`
	FullName        string            `db:"full_name"`
	IDNumber        string            `db:"id_number"`
	PhoneNumber     string            `db:"phone_number"`
	StudyType       string            `db:"study_type"`
	CollegeName     string            `db:"college_name"`
	AdmissionNumber string            `db:"admission_number"`
	LoanPurpose     string            `db:"loan_purpose"`
	LoanAmount      float64           `db:"loan_amount"`
	MpesaCode       string            `db:"mpesa_code"`
	Status          ApplicationStatus `db:"status"`
	CreatedAt       time.Time         `db:"created_at"`
}
