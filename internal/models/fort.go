package models

// FortRecord is one participant's cumulative fort attendance count. The
// identity is carried alongside the count so reports can render display
// names without a separate roster lookup.
type FortRecord struct {
	Identity Identity `json:"identity"`
	Count    int      `json:"count"`
}

// Fort tracks fortress attendance for a guild: who has checked in today, and
// how many folded cycles each participant has accumulated. An identity in
// Attendance has not yet been counted into History for the current cycle.
type Fort struct {
	// Attendance is the set of identities marked for the current cycle
	Attendance []Identity `json:"attendance"`

	// History maps identity keys to cumulative attendance records
	History map[string]*FortRecord `json:"history"`
}

// NewFort creates an empty fort tracker.
func NewFort() *Fort {
	return &Fort{
		Attendance: []Identity{},
		History:    map[string]*FortRecord{},
	}
}

// Mark adds the identity to today's attendance.
func (f *Fort) Mark(id Identity) error {
	if containsIdentity(f.Attendance, id) {
		return ErrAlreadyMarked
	}
	f.Attendance = append(f.Attendance, id)
	return nil
}

// Unmark removes the identity from today's attendance.
func (f *Fort) Unmark(id Identity) error {
	if !containsIdentity(f.Attendance, id) {
		return ErrNotMarked
	}
	f.Attendance = removeIdentity(f.Attendance, id)
	return nil
}

// IsMarkedToday reports whether the identity is in today's attendance.
func (f *Fort) IsMarkedToday(id Identity) bool {
	return containsIdentity(f.Attendance, id)
}

// FoldIntoHistory increments the history count for every identity currently
// marked, then clears today's attendance.
func (f *Fort) FoldIntoHistory() {
	for _, id := range f.Attendance {
		key := id.Key()
		record, ok := f.History[key]
		if !ok {
			record = &FortRecord{Identity: id}
			f.History[key] = record
		}
		record.Count++
	}
	f.Attendance = []Identity{}
}

// HistoryFor returns the folded attendance count for the identity. Today's
// unfolded mark is not included; callers combine with IsMarkedToday.
func (f *Fort) HistoryFor(id Identity) (int, error) {
	record, ok := f.History[id.Key()]
	if !ok {
		return 0, ErrNoHistory
	}
	return record.Count, nil
}

// CombinedReport returns, for every identity appearing in either today's
// attendance or the history, the historical count plus one if currently
// marked. Identities with neither have no entry.
func (f *Fort) CombinedReport() map[string]*FortRecord {
	combined := make(map[string]*FortRecord, len(f.History)+len(f.Attendance))
	for _, id := range f.Attendance {
		combined[id.Key()] = &FortRecord{Identity: id, Count: 1}
	}
	for key, record := range f.History {
		if existing, ok := combined[key]; ok {
			existing.Count += record.Count
		} else {
			combined[key] = &FortRecord{Identity: record.Identity, Count: record.Count}
		}
	}
	return combined
}
