package loan

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Accepts +254 / 254 / 0 prefixes followed by a Safaricom or Airtel
// leading digit and eight more digits.
var kenyanPhoneReg = regexp.MustCompile(`^(\+?254|0)[17]\d{8}$`)

var (
	ErrFullName        = errors.New("Full name must be between 2 and 100 characters.")
	ErrIDNumber        = errors.New("ID number must be between 5 and 20 characters.")
	ErrPhoneNumber     = errors.New("Invalid Kenyan phone number.")
	ErrStudyType       = errors.New("Select a valid study type.")
	ErrCollegeName     = errors.New("College/University name must be between 2 and 200 characters.")
	ErrAdmissionNumber = errors.New("Admission number must be between 2 and 50 characters.")
	ErrLoanPurpose     = errors.New("Select a valid loan purpose.")
	ErrLoanAmount      = errors.New("Loan amount must be a number between 1 and 1,000,000 KSh.")
)

// ParseDraft applies the application schema to raw form input and returns
// either a normalized draft or the first failing field's error. Fields are
// checked in form order so the surfaced message always names the topmost
// violation.
func ParseDraft(in DraftInput) (*Draft, error) {
	d := &Draft{
		FullName:        strings.TrimSpace(in.FullName),
		IDNumber:        strings.TrimSpace(in.IDNumber),
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		StudyType:       strings.TrimSpace(in.StudyType),
		CollegeName:     strings.TrimSpace(in.CollegeName),
		AdmissionNumber: strings.TrimSpace(in.AdmissionNumber),
		LoanPurpose:     strings.TrimSpace(in.LoanPurpose),
	}

	if !lengthBetween(d.FullName, 2, 100) {
		return nil, ErrFullName
	}

	if !lengthBetween(d.IDNumber, 5, 20) {
		return nil, ErrIDNumber
	}

	if !kenyanPhoneReg.MatchString(d.PhoneNumber) {
		return nil, ErrPhoneNumber
	}

	if !contains(StudyTypes, d.StudyType) {
		return nil, ErrStudyType
	}

	if !lengthBetween(d.CollegeName, 2, 200) {
		return nil, ErrCollegeName
	}

	if !lengthBetween(d.AdmissionNumber, 2, 50) {
		return nil, ErrAdmissionNumber
	}

	if !contains(LoanPurposes, d.LoanPurpose) {
		return nil, ErrLoanPurpose
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(in.LoanAmount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrLoanAmount
	}
	if amount <= 0 || amount > 1_000_000 {
		return nil, ErrLoanAmount
	}
	d.LoanAmount = amount

	return d, nil
}

// Validate re-checks an existing draft against the same schema. A draft
// that already passed ParseDraft comes back unchanged.
func (d *Draft) Validate() (*Draft, error) {
	return ParseDraft(DraftInput{
		FullName:        d.FullName,
		IDNumber:        d.IDNumber,
		PhoneNumber:     d.PhoneNumber,
		StudyType:       d.StudyType,
		CollegeName:     d.CollegeName,
		AdmissionNumber: d.AdmissionNumber,
		LoanPurpose:     d.LoanPurpose,
		LoanAmount:      strconv.FormatFloat(d.LoanAmount, 'f', -1, 64),
	})
}

func lengthBetween(v string, min, max int) bool {
	n := len([]rune(v))
	return n >= min && n <= max
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
