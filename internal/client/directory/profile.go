package directory

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/userdir/internal/common"
)

// Status is the authorization flag carried by every profile.
type Status string

const (
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
)

// ParseStatus accepts only the two known status values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusBlocked:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidStatus, s)
}

// Profile field names as stored remotely.
const (
	FieldUserName         = "userName"
	FieldUserEmail        = "userEmail"
	FieldRegistrationTime = "registrationTime"
	FieldLastSignInTime   = "lastSignInTime"
	FieldStatus           = "status"
)

// UserProfile is one record of the directory, keyed by UID.
type UserProfile struct {
	UID              string
	UserName         string
	UserEmail        string
	RegistrationTime string
	LastSignInTime   string
	Status           Status
}

// Mirror is a local copy of the whole directory keyed by uid. A Mirror handed
// out by the synchronizer is never modified afterwards; a new snapshot
// produces a new Mirror.
type Mirror map[string]UserProfile

// Lookup returns the profile for uid.
func (m Mirror) Lookup(uid string) (UserProfile, bool) {
	p, ok := m[uid]
	return p, ok
}

// Sorted lists profiles ordered by uid, the order the collection is keyed in.
func (m Mirror) Sorted() []UserProfile {
	out := make([]UserProfile, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b UserProfile) int {
		switch {
		case a.UID < b.UID:
			return -1
		case a.UID > b.UID:
			return 1
		}
		return 0
	})
	return out
}
