package directory

import (
	"io"
	"log/slog"

	"jobfinder/internal/model"
)

// Session is the browsing state for one run: the record store, the active
// criteria with their derived visible set, the selection and the contacted
// set. All mutation goes through its methods, and every criteria update runs
// the same pipeline: reset selection, recompute the visible set, reconcile the
// selection against it.
type Session struct {
	records  *Records
	criteria Criteria
	visible  []model.Record
	sel      Selection
	contacts *Contacts
	logger   *slog.Logger
}

type Option func(s *Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func NewSession(records *Records, opts ...Option) *Session {
	s := &Session{
		records:  records,
		contacts: NewContacts(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute()
	return s
}

func (s *Session) Records() *Records { return s.records }

func (s *Session) Criteria() Criteria { return s.criteria }

// Visible returns a copy of the current visible set.
func (s *Session) Visible() []model.Record {
	out := make([]model.Record, len(s.visible))
	copy(out, s.visible)
	return out
}

func (s *Session) VisibleCount() int { return len(s.visible) }

// Selected returns the selected record, if any.
func (s *Session) Selected() (model.Record, bool) {
	id, ok := s.sel.ID()
	if !ok {
		return model.Record{}, false
	}
	return s.records.Find(id)
}

func (s *Session) SelectedID() (string, bool) { return s.sel.ID() }

func (s *Session) IsContacted(id string) bool { return s.contacts.IsContacted(id) }

func (s *Session) ContactedCount() int { return s.contacts.Count() }

func (s *Session) ContactedIDs() []string { return s.contacts.IDs() }

func (s *Session) SetRegion(r model.Region) {
	s.criteria.Region = r
	s.criteriaChanged("region", string(r))
}

func (s *Session) SetIndustry(in model.Industry) {
	s.criteria.Industry = in
	s.criteriaChanged("industry", string(in))
}

func (s *Session) SetSearch(text string) {
	s.criteria.Search = text
	s.criteriaChanged("search", text)
}

// SetCriteria replaces all three dimensions at once.
func (s *Session) SetCriteria(c Criteria) {
	s.criteria = c
	s.criteriaChanged("all", "")
}

// ClearFilters resets region, industry and search to their defaults.
func (s *Session) ClearFilters() {
	s.criteria = Criteria{}
	s.criteriaChanged("clear", "")
}

// Select selects id if it is currently visible and reports whether it did.
func (s *Session) Select(id string) bool {
	if !s.sel.Select(id, s.visible) {
		s.logger.Debug("select ignored: record not visible", "record_id", id)
		return false
	}
	s.logger.Debug("record selected", "record_id", id)
	return true
}

func (s *Session) ClearSelection() {
	if _, ok := s.sel.ID(); ok {
		s.logger.Debug("selection cleared")
	}
	s.sel.Clear()
}

// ToggleContacted flips the contacted mark of id and returns the new state.
// It never touches the selection.
func (s *Session) ToggleContacted(id string) bool {
	on := s.contacts.Toggle(id)
	s.logger.Debug("contacted toggled", "record_id", id, "contacted", on, "count", s.contacts.Count())
	return on
}

func (s *Session) criteriaChanged(dim, value string) {
	s.sel.CriteriaChanged()
	s.recompute()
	s.logger.Debug("criteria changed",
		"dimension", dim,
		"value", value,
		"visible", len(s.visible),
	)
}

func (s *Session) recompute() {
	s.visible = Visible(s.records.list, s.criteria)
	if s.sel.Reconcile(s.visible) {
		s.logger.Debug("selection dropped: no longer visible")
	}
}
