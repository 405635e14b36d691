package directory

import "sort"

// Contacts tracks which record ids were marked as contacted. Ids are not
// validated; unknown ids are stored like any other.
type Contacts struct {
	ids map[string]struct{}
}

func NewContacts() *Contacts {
	return &Contacts{ids: map[string]struct{}{}}
}

// Toggle flips membership of id and returns the new state.
func (c *Contacts) Toggle(id string) bool {
	if _, ok := c.ids[id]; ok {
		delete(c.ids, id)
		return false
	}
	c.ids[id] = struct{}{}
	return true
}

func (c *Contacts) IsContacted(id string) bool {
	_, ok := c.ids[id]
	return ok
}

func (c *Contacts) Count() int { return len(c.ids) }

// IDs returns the contacted ids sorted ascending.
func (c *Contacts) IDs() []string {
	out := make([]string, 0, len(c.ids))
	for id := range c.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
