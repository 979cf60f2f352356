package seed

import (
	"context"
	"fmt"

	"campusloans/internal/store"
)

type fakeStudentSeed struct {
	ID         string
	Email      string
	GivenName  string
	FamilyName string
}

var fakeStudents = []fakeStudentSeed{
	{ID: "11111111-1111-1111-1111-111111111111", Email: "wanjiku.kamau+seed1@example.com", GivenName: "Wanjiku", FamilyName: "Kamau"},
	{ID: "22222222-2222-2222-2222-222222222222", Email: "brian.otieno+seed2@example.com", GivenName: "Brian", FamilyName: "Otieno"},
	{ID: "33333333-3333-3333-3333-333333333333", Email: "faith.chebet+seed3@example.com", GivenName: "Faith", FamilyName: "Chebet"},
	{ID: "44444444-4444-4444-4444-444444444444", Email: "kevin.mwangi+seed4@example.com", GivenName: "Kevin", FamilyName: "Mwangi"},
}

func SeedFakeStudents(ctx context.Context, userRepo *store.UserRepository) error {
	for _, student := range fakeStudents {
		err := userRepo.UpsertIdentity(ctx, student.ID, student.Email, student.GivenName, student.FamilyName)
		if err != nil {
			return fmt.Errorf("failed to seed fake student %s: %w", student.ID, err)
		}
	}

	return nil
}
