package window

// Policy decides what a close request does to a window.
type Policy int

const (
	// PolicyHide suppresses the close and hides the window
	PolicyHide Policy = iota
	// PolicyShutdown suppresses the close and shuts the application down
	PolicyShutdown
)

// PolicyFor returns the close policy for a window id.
func PolicyFor(id string) Policy {
	if id == PrimaryWindowID {
		return PolicyShutdown
	}
	return PolicyHide
}

func (p Policy) String() string {
	switch p {
	case PolicyHide:
		return "hide"
	case PolicyShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}
