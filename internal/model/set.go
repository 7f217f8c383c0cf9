package model

// OrderSet is an unordered set of orders keyed on the full struct value.
//
// Membership (Add/Contains) is bit-exact: two orders whose amounts differ
// only past the tolerance still occupy distinct slots. Diff, by contrast,
// compares with Order.Equal. Upstream formats amounts consistently, so in
// practice the two semantics agree; the split is kept deliberate rather
// than papered over.
type OrderSet map[Order]struct{}

// NewOrderSet builds a set from a slice, collapsing bit-exact duplicates.
func NewOrderSet(orders ...Order) OrderSet {
	s := make(OrderSet, len(orders))
	for _, o := range orders {
		s[o] = struct{}{}
	}
	return s
}

// Add inserts an order into the set.
func (s OrderSet) Add(o Order) {
	s[o] = struct{}{}
}

// Contains reports bit-exact membership.
func (s OrderSet) Contains(o Order) bool {
	_, ok := s[o]
	return ok
}

// Len returns the number of orders in the set.
func (s OrderSet) Len() int {
	return len(s)
}

// Diff returns the orders in s that have no tolerance-equal counterpart in
// baseline. Iteration order is unspecified; callers must not rely on it.
// Sets here hold at most a few dozen orders, so the scan is linear.
func (s OrderSet) Diff(baseline OrderSet) []Order {
	var out []Order
	for o := range s {
		if !baseline.containsEqual(o) {
			out = append(out, o)
		}
	}
	return out
}

func (s OrderSet) containsEqual(o Order) bool {
	// Fast path: bit-exact hit.
	if s.Contains(o) {
		return true
	}
	for b := range s {
		if b.Equal(o) {
			return true
		}
	}
	return false
}
