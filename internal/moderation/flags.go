// Package moderation tracks flagged videos and why they were flagged.
package moderation

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultReason is recorded when a video is flagged without a reason.
const DefaultReason = "Not supplied"

var (
	ErrAlreadyFlagged = errors.New("video is already flagged")
	ErrNotFlagged     = errors.New("video is not flagged")
	// ErrVideoFlagged matches any *FlaggedError via errors.Is.
	ErrVideoFlagged = errors.New("video is currently flagged")
)

// FlaggedError reports that an operation was refused because the video is flagged.
type FlaggedError struct {
	VideoID string
	Reason  string
}

func (e *FlaggedError) Error() string {
	return fmt.Sprintf("%s (reason: %s)", ErrVideoFlagged, e.Reason)
}

// Is lets errors.Is(err, ErrVideoFlagged) match.
func (e *FlaggedError) Is(target error) bool {
	return target == ErrVideoFlagged
}

// Flags is the set of flagged video IDs with their reasons.
type Flags struct {
	reasons map[string]string
}

// New creates an empty flag set.
func New() *Flags {
	return &Flags{reasons: make(map[string]string)}
}

// Flag marks id as flagged. A blank reason becomes DefaultReason.
// It returns the recorded reason.
func (f *Flags) Flag(id, reason string) (string, error) {
	if _, ok := f.reasons[id]; ok {
		return "", ErrAlreadyFlagged
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultReason
	}
	f.reasons[id] = reason
	return reason, nil
}

// Allow removes the flag from id.
func (f *Flags) Allow(id string) error {
	if _, ok := f.reasons[id]; !ok {
		return ErrNotFlagged
	}
	delete(f.reasons, id)
	return nil
}

// Reason returns the flag reason for id, if flagged.
func (f *Flags) Reason(id string) (string, bool) {
	r, ok := f.reasons[id]
	return r, ok
}

// IsFlagged reports whether id is flagged.
func (f *Flags) IsFlagged(id string) bool {
	_, ok := f.reasons[id]
	return ok
}

// Check returns a *FlaggedError if id is flagged, nil otherwise.
func (f *Flags) Check(id string) error {
	if r, ok := f.reasons[id]; ok {
		return &FlaggedError{VideoID: id, Reason: r}
	}
	return nil
}
