package models

import (
	"fmt"
	"strings"
)

// Identity identifies a participant in guild activities. The same Discord
// user may register additional "alt" identities by attaching a label.
type Identity struct {
	// ExternalID is the Discord user ID of the participant
	ExternalID string `json:"external_id"`

	// Handle is the display name shown in rosters and mentions
	Handle string `json:"handle"`

	// Label distinguishes alt characters belonging to the same user
	Label string `json:"label,omitempty"`
}

// Key returns the identity key used for set membership and history counting.
// Two identities are the same participant when the external ID matches and
// the labels match case-insensitively.
func (id Identity) Key() string {
	return fmt.Sprintf("%s:%s", id.ExternalID, strings.ToLower(id.Label))
}

// Equal reports whether two identities refer to the same participant.
func (id Identity) Equal(other Identity) bool {
	return id.Key() == other.Key()
}

// DisplayName returns the handle with the alt label appended when present.
func (id Identity) DisplayName() string {
	if id.Label == "" {
		return id.Handle
	}
	return fmt.Sprintf("%s %s", id.Handle, id.Label)
}
