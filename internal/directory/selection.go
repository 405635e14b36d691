package directory

import "jobfinder/internal/model"

// Selection holds at most one selected record id. Once reconciled, a selected
// id is always a member of the visible set it was reconciled against.
type Selection struct {
	id string
}

func (s *Selection) ID() (string, bool) {
	return s.id, s.id != ""
}

// Select selects id if it is visible. Selecting a record that is not visible
// leaves the state untouched and returns false.
func (s *Selection) Select(id string, visible []model.Record) bool {
	if id == "" || !containsID(visible, id) {
		return false
	}
	s.id = id
	return true
}

func (s *Selection) Clear() {
	s.id = ""
}

// CriteriaChanged resets the selection. It runs on every criteria update,
// including updates that leave the value unchanged.
func (s *Selection) CriteriaChanged() {
	s.id = ""
}

// Reconcile drops the selection if it is no longer part of visible.
// It reports whether the selection was dropped.
func (s *Selection) Reconcile(visible []model.Record) bool {
	if s.id == "" || containsID(visible, s.id) {
		return false
	}
	s.id = ""
	return true
}

func containsID(rs []model.Record, id string) bool {
	for _, r := range rs {
		if r.ID == id {
			return true
		}
	}
	return false
}
