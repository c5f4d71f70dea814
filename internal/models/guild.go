package models

import (
	"sync"

	json "github.com/goccy/go-json"
)

// DefaultDailyResetHour is the reset hour applied to newly created guilds.
const DefaultDailyResetHour = 3

// Guild is the top-level coordination unit, one per Discord channel. All
// mutating operations go through the guild's own mutex; reads tolerate
// concurrent mutation. The mutex is never serialized and comes back
// zero-valued on load.
type Guild struct {
	// Title is the guild display title
	Title string `json:"title"`

	// ChannelID is the Discord channel the guild lives in, immutable once set
	ChannelID string `json:"channel_id"`

	// Expeditions maps lowercase title slugs to expeditions
	Expeditions map[string]*Expedition `json:"expeditions"`

	// Fort is the fortress attendance tracker
	Fort *Fort `json:"fort"`

	// PinnedMessageID is the standing summary message, empty until first posted
	PinnedMessageID string `json:"pinned_message_id,omitempty"`

	// DailyResetHour is the hour [0,23] at which the daily reset runs
	DailyResetHour int `json:"daily_reset_hour"`

	// Active is false once the guild has been stopped; state is retained
	Active bool `json:"active"`

	mu sync.Mutex
}

// NewGuild creates an active guild with no expeditions and a fresh tracker.
func NewGuild(title, channelID string) *Guild {
	return &Guild{
		Title:          title,
		ChannelID:      channelID,
		Expeditions:    map[string]*Expedition{},
		Fort:           NewFort(),
		DailyResetHour: DefaultDailyResetHour,
		Active:         true,
	}
}

// Normalize repairs zero values after deserialization. The mutex needs no
// handling; it is unexported and unmarshals to its usable zero value.
func (g *Guild) Normalize() {
	if g.Expeditions == nil {
		g.Expeditions = map[string]*Expedition{}
	}
	if g.Fort == nil {
		g.Fort = NewFort()
	}
	if g.Fort.History == nil {
		g.Fort.History = map[string]*FortRecord{}
	}
}

// MarshalJSON serializes the guild under its own lock, so a registry save
// running off another channel's mutation never observes this guild
// mid-mutation.
func (g *Guild) MarshalJSON() ([]byte, error) {
	// document drops the methods so the nested marshal does not recurse
	type document Guild

	g.mu.Lock()
	defer g.mu.Unlock()
	return json.Marshal((*document)(g))
}

// Reactivate brings a stopped guild back, optionally retitling it. Rosters
// and attendance survive stop/reactivate cycles.
func (g *Guild) Reactivate(title string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Active = true
	if title != "" {
		g.Title = title
	}
}

// Deactivate marks the guild stopped; its state is retained.
func (g *Guild) Deactivate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Active = false
}

// IsActive reports whether the guild is currently tracking its channel.
func (g *Guild) IsActive() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Active
}

// SetPinnedMessage records the standing summary message.
func (g *Guild) SetPinnedMessage(messageID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.PinnedMessageID = messageID
}

// PinnedMessage returns the standing summary message ID, empty until the
// first summary is posted.
func (g *Guild) PinnedMessage() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.PinnedMessageID
}

// ExpeditionList returns a snapshot slice of the expeditions, safe to
// iterate while other commands mutate the guild.
func (g *Guild) ExpeditionList() []*Expedition {
	g.mu.Lock()
	defer g.mu.Unlock()

	list := make([]*Expedition, 0, len(g.Expeditions))
	for _, e := range g.Expeditions {
		list = append(list, e)
	}
	return list
}

// ResetHour returns the hour the daily reset runs.
func (g *Guild) ResetHour() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.DailyResetHour
}

// expedition looks up by slug. Callers hold the lock where required.
func (g *Guild) expedition(title string) (*Expedition, error) {
	e, ok := g.Expeditions[Slug(title)]
	if !ok {
		return nil, ErrExpeditionNotFound
	}
	return e, nil
}

// Expedition returns the expedition stored under the title's slug.
func (g *Guild) Expedition(title string) (*Expedition, error) {
	return g.expedition(title)
}

// CreateExpedition inserts a new expedition with empty rosters.
func (g *Guild) CreateExpedition(title, timeOfDay, description string) (*Expedition, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.expedition(title); err == nil {
		return nil, ErrExpeditionExists
	}

	e, err := NewExpedition(title, timeOfDay, description)
	if err != nil {
		return nil, err
	}
	g.Expeditions[Slug(title)] = e
	return e, nil
}

// RenameExpedition moves an expedition to a new title, keeping its rosters.
func (g *Guild) RenameExpedition(oldTitle, newTitle string) (*Expedition, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, err := g.expedition(oldTitle)
	if err != nil {
		return nil, err
	}
	if Slug(newTitle) != Slug(oldTitle) {
		if _, err := g.expedition(newTitle); err == nil {
			return nil, ErrExpeditionExists
		}
	}

	delete(g.Expeditions, Slug(oldTitle))
	e.Title = newTitle
	g.Expeditions[Slug(newTitle)] = e
	return e, nil
}

// SetExpeditionTime updates an expedition's schedule in place.
func (g *Guild) SetExpeditionTime(title, timeOfDay string) (*Expedition, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, err := g.expedition(title)
	if err != nil {
		return nil, err
	}
	if err := e.SetTime(timeOfDay); err != nil {
		return nil, err
	}
	return e, nil
}

// SetExpeditionDescription updates an expedition's description in place.
func (g *Guild) SetExpeditionDescription(title, description string) (*Expedition, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, err := g.expedition(title)
	if err != nil {
		return nil, err
	}
	e.Description = description
	return e, nil
}

// DeleteExpedition removes an expedition entirely.
func (g *Guild) DeleteExpedition(title string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.expedition(title); err != nil {
		return err
	}
	delete(g.Expeditions, Slug(title))
	return nil
}

// CheckIn adds the identity to the expedition roster.
func (g *Guild) CheckIn(title string, id Identity) (*Expedition, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, err := g.expedition(title)
	if err != nil {
		return nil, err
	}
	if containsIdentity(e.Members, id) {
		return nil, ErrAlreadyCheckedIn
	}
	if len(e.Members) >= MaxExpeditionMembers {
		return nil, ErrExpeditionFull
	}
	e.Members = append(e.Members, id)
	return e, nil
}

// CheckOut removes the identity from the expedition roster.
func (g *Guild) CheckOut(title string, id Identity) (*Expedition, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, err := g.expedition(title)
	if err != nil {
		return nil, err
	}
	if !containsIdentity(e.Members, id) {
		return nil, ErrNotCheckedIn
	}
	e.Members = removeIdentity(e.Members, id)
	return e, nil
}

// ToggleDaily flips the identity's presence on the recurring roster and
// reports whether it was added. The daily roster has no capacity cap.
func (g *Guild) ToggleDaily(title string, id Identity) (*Expedition, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, err := g.expedition(title)
	if err != nil {
		return nil, false, err
	}
	if containsIdentity(e.Daily, id) {
		e.Daily = removeIdentity(e.Daily, id)
		return e, false, nil
	}
	e.Daily = append(e.Daily, id)
	return e, true, nil
}

// ToggleReady flips the identity's presence on the ready roster and reports
// whether it was added.
func (g *Guild) ToggleReady(title string, id Identity) (*Expedition, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, err := g.expedition(title)
	if err != nil {
		return nil, false, err
	}
	if containsIdentity(e.Ready, id) {
		e.Ready = removeIdentity(e.Ready, id)
		return e, false, nil
	}
	e.Ready = append(e.Ready, id)
	return e, true, nil
}

// SetDailyResetHour updates the hour at which the daily reset runs.
func (g *Guild) SetDailyResetHour(hour int) error {
	if hour < 0 || hour > 23 {
		return ErrInvalidResetHour
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.DailyResetHour = hour
	return nil
}

// ResetExpeditions rolls every expedition over to the next cycle: the daily
// roster becomes the member roster and the ready roster is cleared.
func (g *Guild) ResetExpeditions() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.Expeditions {
		e.Members = append([]Identity{}, e.Daily...)
		e.Ready = []Identity{}
	}
}

// MarkFort records the identity in today's fort attendance.
func (g *Guild) MarkFort(id Identity) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Fort.Mark(id)
}

// UnmarkFort removes the identity from today's fort attendance.
func (g *Guild) UnmarkFort(id Identity) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Fort.Unmark(id)
}

// FortMarkedToday reports whether the identity has marked attendance today.
func (g *Guild) FortMarkedToday(id Identity) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Fort.IsMarkedToday(id)
}

// FoldFortHistory folds today's attendance into the cumulative history.
func (g *Guild) FoldFortHistory() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Fort.FoldIntoHistory()
}

// FortHistoryFor returns the identity's folded attendance count.
func (g *Guild) FortHistoryFor(id Identity) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Fort.HistoryFor(id)
}

// FortReport returns the combined attendance report for all participants.
func (g *Guild) FortReport() map[string]*FortRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Fort.CombinedReport()
}

// ResetFort discards all attendance state, current and historical.
func (g *Guild) ResetFort() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Fort = NewFort()
}
