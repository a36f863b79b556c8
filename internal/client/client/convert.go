package client

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/userdir/internal/client/directory"
	"github.com/dmitrijs2005/userdir/internal/rpc"
)

func toIdentity(i *rpc.Identity) *directory.Identity {
	return &directory.Identity{
		UID:   i.GetUid(),
		Email: i.GetEmail(),
		Metadata: directory.Metadata{
			CreationTime:   fromTimestamp(i.GetCreationTime()),
			LastSignInTime: fromTimestamp(i.GetLastSignInTime()),
		},
	}
}

// fromTimestamp maps an unset timestamp to the zero time.
func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func toProfile(p *rpc.Profile) directory.UserProfile {
	return directory.UserProfile{
		UID:              p.GetUid(),
		UserName:         p.GetUserName(),
		UserEmail:        p.GetUserEmail(),
		RegistrationTime: p.GetRegistrationTime(),
		LastSignInTime:   p.GetLastSignInTime(),
		Status:           directory.Status(p.GetStatus()),
	}
}

func fromProfile(p directory.UserProfile) *rpc.Profile {
	return &rpc.Profile{
		Uid:              p.UID,
		UserName:         p.UserName,
		UserEmail:        p.UserEmail,
		RegistrationTime: p.RegistrationTime,
		LastSignInTime:   p.LastSignInTime,
		Status:           string(p.Status),
	}
}

func toSnapshot(s *rpc.Snapshot) directory.Snapshot {
	out := directory.Snapshot{Exists: s.GetExists()}
	if len(s.GetProfiles()) > 0 {
		out.Profiles = make(map[string]directory.UserProfile, len(s.GetProfiles()))
		for uid, p := range s.GetProfiles() {
			out.Profiles[uid] = toProfile(p)
		}
	}
	return out
}
