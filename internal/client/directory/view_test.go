package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	id := &Identity{UID: "u1"}

	tests := []struct {
		name     string
		identity *Identity
		mirror   Mirror
		want     State
	}{
		{name: "no session", identity: nil, mirror: Mirror{"u1": {Status: StatusActive}}, want: Anonymous},
		{name: "no session empty mirror", identity: nil, mirror: nil, want: Anonymous},
		{name: "blocked", identity: id, mirror: Mirror{"u1": {UID: "u1", Status: StatusBlocked}}, want: Blocked},
		{name: "active", identity: id, mirror: Mirror{"u1": {UID: "u1", Status: StatusActive}}, want: Active},
		{name: "unknown status", identity: id, mirror: Mirror{"u1": {UID: "u1", Status: "pending"}}, want: Blocked},
		{name: "profile not synced yet", identity: id, mirror: Mirror{"u2": {Status: StatusActive}}, want: Anonymous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compose(tt.identity, tt.mirror)
			assert.Equal(t, tt.want, v.State)
			assert.Equal(t, tt.identity, v.Identity)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "blocked", Blocked.String())
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestMirrorSorted(t *testing.T) {
	m := Mirror{"b": {UID: "b"}, "a": {UID: "a"}, "c": {UID: "c"}}
	got := m.Sorted()
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].UID, got[1].UID, got[2].UID})
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("blocked")
	assert.NoError(t, err)
	assert.Equal(t, StatusBlocked, s)

	_, err = ParseStatus("Active")
	assert.Error(t, err)
}
