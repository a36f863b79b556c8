package models

import "time"

// Profile is one directory record. UID equals the owning Identity.ID but is
// deliberately not a foreign key: a profile can outlive its identity when the
// client fails to delete it after deleting the account.
type Profile struct {
	UID              string
	UserName         string
	UserEmail        string
	RegistrationTime string
	LastSignInTime   string
	Status           string
	UpdatedAt        time.Time
}
