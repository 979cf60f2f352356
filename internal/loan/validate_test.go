package loan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() DraftInput {
	return DraftInput{
		FullName:        "Jane Doe",
		IDNumber:        "12345678",
		PhoneNumber:     "0712345678",
		StudyType:       "Degree",
		CollegeName:     "UoN",
		AdmissionNumber: "A123",
		LoanPurpose:     "Fee Payment",
		LoanAmount:      "5000",
	}
}

func TestParseDraftValid(t *testing.T) {
	draft, err := ParseDraft(validInput())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", draft.FullName)
	assert.Equal(t, "12345678", draft.IDNumber)
	assert.Equal(t, "0712345678", draft.PhoneNumber)
	assert.Equal(t, "Degree", draft.StudyType)
	assert.Equal(t, "UoN", draft.CollegeName)
	assert.Equal(t, "A123", draft.AdmissionNumber)
	assert.Equal(t, "Fee Payment", draft.LoanPurpose)
	assert.Equal(t, float64(5000), draft.LoanAmount)
}

func TestParseDraftTrimsFields(t *testing.T) {
	in := validInput()
	in.FullName = "  Jane Doe  "
	in.PhoneNumber = " 0712345678 "
	in.LoanAmount = " 5000 "

	draft, err := ParseDraft(in)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", draft.FullName)
	assert.Equal(t, "0712345678", draft.PhoneNumber)
}

func TestParseDraftPhoneNumbers(t *testing.T) {
	valid := []string{
		"0712345678",
		"0112345678",
		"254712345678",
		"+254712345678",
		"254112345678",
		"+254112345678",
	}
	for _, phone := range valid {
		in := validInput()
		in.PhoneNumber = phone
		_, err := ParseDraft(in)
		assert.NoError(t, err, "expected %q to be a valid phone number", phone)
	}

	invalid := []string{
		"",
		"0812345678",    // bad network prefix
		"071234567",     // too short
		"07123456789",   // too long
		"0712 345 678",  // whitespace inside
		"+2540712345678", // mixed prefixes
		"notaphone",
		"254-712345678",
	}
	for _, phone := range invalid {
		in := validInput()
		in.PhoneNumber = phone
		_, err := ParseDraft(in)
		assert.ErrorIs(t, err, ErrPhoneNumber, "expected %q to be rejected", phone)
	}
}

func TestParseDraftLoanAmounts(t *testing.T) {
	valid := []string{"1", "0.5", "5000", "999999.99", "1000000"}
	for _, amount := range valid {
		in := validInput()
		in.LoanAmount = amount
		_, err := ParseDraft(in)
		assert.NoError(t, err, "expected amount %q to pass", amount)
	}

	invalid := []string{"", "0", "-5", "abc", "1000000.01", "2000000", "NaN", "+Inf"}
	for _, amount := range invalid {
		in := validInput()
		in.LoanAmount = amount
		_, err := ParseDraft(in)
		assert.ErrorIs(t, err, ErrLoanAmount, "expected amount %q to be rejected", amount)
	}
}

func TestParseDraftFieldLengths(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DraftInput)
		want   error
	}{
		{"full name too short", func(in *DraftInput) { in.FullName = "J" }, ErrFullName},
		{"id number too short", func(in *DraftInput) { in.IDNumber = "1234" }, ErrIDNumber},
		{"unknown study type", func(in *DraftInput) { in.StudyType = "Bootcamp" }, ErrStudyType},
		{"college name too short", func(in *DraftInput) { in.CollegeName = "U" }, ErrCollegeName},
		{"admission number too short", func(in *DraftInput) { in.AdmissionNumber = "A" }, ErrAdmissionNumber},
		{"unknown loan purpose", func(in *DraftInput) { in.LoanPurpose = "Vacation" }, ErrLoanPurpose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := ParseDraft(in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseDraftReportsFirstViolation(t *testing.T) {
	in := validInput()
	in.FullName = "J"
	in.PhoneNumber = "bogus"

	_, err := ParseDraft(in)
	assert.ErrorIs(t, err, ErrFullName)
}

func TestValidateIsIdempotent(t *testing.T) {
	draft, err := ParseDraft(validInput())
	require.NoError(t, err)

	again, err := draft.Validate()
	require.NoError(t, err)
	assert.Equal(t, draft, again)
}
