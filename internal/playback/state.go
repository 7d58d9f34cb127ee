package playback

// State is where the session sits in the Stopped, Playing, Paused cycle.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

var stateNames = [...]string{
	StateStopped: "Stopped",
	StatePlaying: "Playing",
	StatePaused:  "Paused",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// IsActive reports whether a video is loaded, paused or not.
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
