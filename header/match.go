package header

// matcher is an incremental Knuth-Morris-Pratt matcher.  On a mismatch it
// falls back along the failure table instead of restarting at zero, so the
// byte that broke a partial match is still considered as the start of a new
// one.
type matcher struct {
	pat  []byte
	fail []int
	n    int
}

func newMatcher(pat string) *matcher {
	m := &matcher{pat: []byte(pat), fail: make([]int, len(pat))}
	k := 0
	for i := 1; i < len(m.pat); i++ {
		for k > 0 && m.pat[i] != m.pat[k] {
			k = m.fail[k-1]
		}
		if m.pat[i] == m.pat[k] {
			k++
		}
		m.fail[i] = k
	}
	return m
}

// feed consumes one byte and reports whether the pattern ends at it.
func (m *matcher) feed(c byte) bool {
	for m.n > 0 && c != m.pat[m.n] {
		m.n = m.fail[m.n-1]
	}
	if c == m.pat[m.n] {
		m.n++
	}
	if m.n == len(m.pat) {
		m.n = m.fail[m.n-1]
		return true
	}
	return false
}
