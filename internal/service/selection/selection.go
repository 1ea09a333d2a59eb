package selection

import "context"

// Deleter is the slice of the order store a selection needs to flush itself.
type Deleter interface {
	Delete(ctx context.Context, id int64) error
}

// Set is a toggle-based multi-select over order ids, shared by every
// listing that supports select-then-bulk-delete. It knows nothing about
// the records behind the ids.
type Set struct {
	ids map[int64]struct{}
}

func NewSet() *Set {
	return &Set{ids: make(map[int64]struct{})}
}

// Toggle adds the id if absent, removes it if present.
func (s *Set) Toggle(id int64) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

func (s *Set) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the held ids in no particular order.
func (s *Set) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}

	return out
}

func (s *Set) Clear() {
	s.ids = make(map[int64]struct{})
}

// DeleteAll issues a store delete for every held id, then clears the set.
// The first failing delete aborts; already-deleted ids stay selected so
// the caller can retry.
func (s *Set) DeleteAll(ctx context.Context, d Deleter) error {
	for id := range s.ids {
		if err := d.Delete(ctx, id); err != nil {
			return err
		}
		delete(s.ids, id)
	}

	return nil
}
