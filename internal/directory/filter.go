package directory

import (
	"strings"

	"jobfinder/internal/model"
)

// Criteria is the active filter. The zero value matches every record:
// an empty Region or Industry means "all".
type Criteria struct {
	Region   model.Region   `json:"region,omitempty"`
	Industry model.Industry `json:"industry,omitempty"`
	Search   string         `json:"search,omitempty"`
}

// Active reports whether any dimension differs from its default.
func (c Criteria) Active() bool {
	return c.Region != "" || c.Industry != "" || c.Search != ""
}

func (c Criteria) Matches(r model.Record) bool {
	if c.Region != "" && r.Region != c.Region {
		return false
	}
	if c.Industry != "" && r.Industry != c.Industry {
		return false
	}
	return matchesText(r, strings.ToLower(c.Search))
}

func matchesText(r model.Record, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range []string{r.CompanyName, r.Address, r.FirstName, r.LastName} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Visible returns the records matching c, preserving source order.
// It never returns nil.
func Visible(records []model.Record, c Criteria) []model.Record {
	needle := strings.ToLower(c.Search)
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if c.Region != "" && r.Region != c.Region {
			continue
		}
		if c.Industry != "" && r.Industry != c.Industry {
			continue
		}
		if !matchesText(r, needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}
