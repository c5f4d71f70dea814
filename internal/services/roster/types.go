package roster

// Entry is one row of the external fort roster
type Entry struct {
	// Name is the participant's in-game name
	Name string `json:"name"`

	// Role is the participant's assigned role
	Role string `json:"role"`
}

// GetFortRosterOutput holds the result of GetFortRoster. Entries arrive
// ranked by the feed and are kept in order.
type GetFortRosterOutput struct {
	Entries []Entry
}
