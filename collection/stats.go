package collection

// Stats summarizes a collection.
type Stats struct {
	Count   int   `json:"count"`
	Special int   `json:"special"`
	On      int   `json:"on"`
	Off     int   `json:"off"`
	First   int64 `json:"first"`
	Last    int64 `json:"last"`
	// Duration is Last-First in ticks.
	Duration int64 `json:"duration"`
}

// Stats counts special, ON and OFF events.  ON and OFF count addressed
// events only.  First and Last are the first and last timestamps in file
// order, which need not be the extremes.
func (c *Events) Stats() Stats {
	s := Stats{Count: c.Len()}
	for i := 0; i < s.Count; i++ {
		switch {
		case c.special[i]:
			s.Special++
		case c.polarity[i]:
			s.On++
		default:
			s.Off++
		}
	}
	if s.Count > 0 {
		s.First = c.ts[0]
		s.Last = c.ts[s.Count-1]
		s.Duration = s.Last - s.First
	}
	return s
}
