package directory

// State is what the presentation layer should show.
type State int

const (
	// Anonymous: no session, or a session whose profile is not in the
	// directory yet. Offer sign-in and sign-up.
	Anonymous State = iota
	// Blocked: the session's profile exists but is not active.
	Blocked
	// Active: show the directory and the account controls.
	Active
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Blocked:
		return "blocked"
	case Active:
		return "active"
	}
	return "unknown"
}

// View is a composed render decision.
type View struct {
	State    State
	Identity *Identity
	// Own is the session's profile; meaningful unless State is Anonymous.
	Own UserProfile
}

// Compose derives the view from the current identity and mirror.
func Compose(identity *Identity, mirror Mirror) View {
	if identity == nil {
		return View{State: Anonymous}
	}
	own, ok := mirror.Lookup(identity.UID)
	if !ok {
		return View{State: Anonymous, Identity: identity}
	}
	v := View{Identity: identity, Own: own, State: Blocked}
	if own.Status == StatusActive {
		v.State = Active
	}
	return v
}
