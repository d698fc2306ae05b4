// Package memory holds the records of one input file in input order.
package memory

// Store is an ordered, append-only sequence of typed records.
type Store[R any] struct {
	records []R
}

func New[R any](records ...R) *Store[R] {
	s := &Store[R]{}
	s.Append(records...)
	return s
}

func (s *Store[R]) Append(records ...R) {
	s.records = append(s.records, records...)
}

// All returns a copy of the records in input order.
func (s *Store[R]) All() []R {
	out := make([]R, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store[R]) Len() int {
	return len(s.records)
}

// Filter returns the records matching pred, keeping input order.
func (s *Store[R]) Filter(pred func(R) bool) []R {
	var out []R
	for _, r := range s.records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
