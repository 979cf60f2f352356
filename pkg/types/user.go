package types

import "time"

type User struct {
	ID         string    `db:"id"`
	Email      *string   `db:"email"`
	GivenName  *string   `db:"given_name"`
	FamilyName *string   `db:"family_name"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
