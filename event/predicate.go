package event

// Predicate reports whether an event satisfies a condition.  Predicates
// must be pure: no I/O and no shared mutable state.
type Predicate func(Event) bool

func IsSpecial(e Event) bool   { return e.Special }
func IsAddressed(e Event) bool { return !e.Special }
func IsOn(e Event) bool        { return e.Polarity }
func IsOff(e Event) bool       { return !e.Polarity }

// And is satisfied when all of ps are.
func And(ps ...Predicate) Predicate {
	return func(e Event) bool {
		for _, p := range ps {
			if !p(e) {
				return false
			}
		}
		return true
	}
}

// Or is satisfied when any of ps is.
func Or(ps ...Predicate) Predicate {
	return func(e Event) bool {
		for _, p := range ps {
			if p(e) {
				return true
			}
		}
		return false
	}
}

func Not(p Predicate) Predicate {
	return func(e Event) bool {
		return !p(e)
	}
}
