package seed

import (
	"context"
	"errors"
	"fmt"

	"campusloans/internal/store"
	"campusloans/pkg/types"
)

// Sample applications across the whole status range so the status page has
// something to render in development. IDs are fixed so reseeding is a no-op.
var sampleApplications = []*types.LoanApplication{
	{
		ID:              "seedapp00000000000000000000000001",
		UserID:          fakeStudents[0].ID,
		FullName:        "Wanjiku Kamau",
		IDNumber:        "32456781",
		PhoneNumber:     "0712345678",
		StudyType:       "Degree",
		CollegeName:     "University of Nairobi",
		AdmissionNumber: "E35/1234/2023",
		LoanPurpose:     "Fee Payment",
		LoanAmount:      25000,
		MpesaCode:       "SH12ABC34D",
		Status:          types.ApplicationStatusPending,
	},
	{
		ID:              "seedapp00000000000000000000000002",
		UserID:          fakeStudents[0].ID,
		FullName:        "Wanjiku Kamau",
		IDNumber:        "32456781",
		PhoneNumber:     "0712345678",
		StudyType:       "Degree",
		CollegeName:     "University of Nairobi",
		AdmissionNumber: "E35/1234/2023",
		LoanPurpose:     "Books and Supplies",
		LoanAmount:      4500,
		MpesaCode:       "SG98XYZ21K",
		Status:          types.ApplicationStatusApproved,
	},
	{
		ID:              "seedapp00000000000000000000000003",
		UserID:          fakeStudents[1].ID,
		FullName:        "Brian Otieno",
		IDNumber:        "28811234",
		PhoneNumber:     "+254701234567",
		StudyType:       "Diploma",
		CollegeName:     "Kenya Medical Training College",
		AdmissionNumber: "KMTC/2024/889",
		LoanPurpose:     "Accommodation",
		LoanAmount:      12000,
		MpesaCode:       "SF55QRS77T",
		Status:          types.ApplicationStatusRejected,
	},
}

func SeedSampleApplications(ctx context.Context, applicationsRepo *store.ApplicationRepository) error {
	for _, app := range sampleApplications {
		_, err := applicationsRepo.Application(ctx, app.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrApplicationNotFound) {
			return fmt.Errorf("failed to check sample application %s: %w", app.ID, err)
		}

		if err := applicationsRepo.CreateApplication(ctx, app); err != nil {
			return fmt.Errorf("failed to create sample application %s: %w", app.ID, err)
		}
	}

	return nil
}
