package models

import (
	"strings"
	"time"
)

// MaxExpeditionMembers is the hard cap on an expedition roster.
const MaxExpeditionMembers = 10

// expeditionTimeLayout parses the stored HHMM schedule value.
const expeditionTimeLayout = "1504"

// Expedition is a named timed activity with a member roster, a ready
// sub-roster, and a daily recurring sub-roster. Titles keep their original
// casing for display; lookup goes through the lowercase slug.
type Expedition struct {
	// Title is the display title as entered at creation
	Title string `json:"title"`

	// Time is the scheduled time of day in 24h HHMM form, no date
	Time string `json:"time"`

	// Description is free-form text shown with the expedition
	Description string `json:"description,omitempty"`

	// Members is the roster for the current cycle, capped at MaxExpeditionMembers
	Members []Identity `json:"members"`

	// Ready holds members who confirmed they are ready, cleared on daily reset
	Ready []Identity `json:"ready"`

	// Daily holds recurring sign-ups rolled over as the next cycle's roster
	Daily []Identity `json:"daily"`
}

// NewExpedition creates an expedition with empty rosters. Returns
// ErrInvalidTime if the schedule does not parse as a 24h HHMM value.
func NewExpedition(title, timeOfDay, description string) (*Expedition, error) {
	e := &Expedition{
		Title:       title,
		Description: description,
		Members:     []Identity{},
		Ready:       []Identity{},
		Daily:       []Identity{},
	}
	if err := e.SetTime(timeOfDay); err != nil {
		return nil, err
	}
	return e, nil
}

// Slug returns the lowercase lookup key for an expedition title.
func Slug(title string) string {
	return strings.ToLower(title)
}

// SetTime validates and stores a new schedule value.
func (e *Expedition) SetTime(timeOfDay string) error {
	if _, err := time.Parse(expeditionTimeLayout, timeOfDay); err != nil {
		return ErrInvalidTime
	}
	e.Time = timeOfDay
	return nil
}

// TimeOfDay returns the parsed schedule. The expedition time is validated on
// every write, so a stored value always parses.
func (e *Expedition) TimeOfDay() time.Time {
	t, _ := time.Parse(expeditionTimeLayout, e.Time)
	return t
}

// HasMember reports whether the identity is on the member roster.
func (e *Expedition) HasMember(id Identity) bool {
	return containsIdentity(e.Members, id)
}

func containsIdentity(ids []Identity, id Identity) bool {
	for _, existing := range ids {
		if existing.Equal(id) {
			return true
		}
	}
	return false
}

func removeIdentity(ids []Identity, id Identity) []Identity {
	out := make([]Identity, 0, len(ids))
	for _, existing := range ids {
		if !existing.Equal(id) {
			out = append(out, existing)
		}
	}
	return out
}
