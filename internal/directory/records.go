package directory

import (
	"errors"
	"fmt"

	"jobfinder/internal/model"
)

var (
	ErrDuplicateID        = errors.New("duplicate record id")
	ErrEmptyID            = errors.New("empty record id")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Records is the immutable full record list, in source order.
type Records struct {
	list  []model.Record
	index map[string]int
}

// NewRecords validates and takes a private copy of rs.
func NewRecords(rs []model.Record) (*Records, error) {
	out := &Records{
		list:  make([]model.Record, len(rs)),
		index: make(map[string]int, len(rs)),
	}
	copy(out.list, rs)
	for i, r := range out.list {
		if r.ID == "" {
			return nil, fmt.Errorf("record #%d: %w", i, ErrEmptyID)
		}
		if _, dup := out.index[r.ID]; dup {
			return nil, fmt.Errorf("record %s: %w", r.ID, ErrDuplicateID)
		}
		if !r.Location.Valid() {
			return nil, fmt.Errorf("record %s (%s): %w", r.ID, r.Location, ErrInvalidCoordinates)
		}
		out.index[r.ID] = i
	}
	return out, nil
}

// All returns a copy of the full list.
func (r *Records) All() []model.Record {
	out := make([]model.Record, len(r.list))
	copy(out, r.list)
	return out
}

func (r *Records) Len() int { return len(r.list) }

func (r *Records) Find(id string) (model.Record, bool) {
	i, ok := r.index[id]
	if !ok {
		return model.Record{}, false
	}
	return r.list[i], true
}
