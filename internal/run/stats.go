package run

// Stats counts per-file outcomes for a single run.
type Stats struct {
	Success  int `json:"success"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
	ReadOnly int `json:"read_only"`
}

// Total is the number of files the run looked at.
func (s Stats) Total() int {
	return s.Success + s.Failed + s.Skipped + s.ReadOnly
}
