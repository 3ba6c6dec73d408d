package engine

import "skoll/internal/common"

// RefSequence issues order refs, strictly increasing from zero with no reuse
// and no wraparound within a run. The engine assigns refs itself so that ref
// order is submission order. Not safe for concurrent use; each engine owns
// its own sequence.
type RefSequence struct {
	next common.Ref
}

// Next returns a ref strictly greater than every previously returned value.
func (s *RefSequence) Next() common.Ref {
	ref := s.next
	s.next++
	return ref
}
