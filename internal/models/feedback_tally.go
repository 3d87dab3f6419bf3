package models

// FeedbackTally aggregates the feedback rows of a single intervention by
// result. It is derived data, recomputed from the feedback table on demand.
type FeedbackTally struct {
	Helped   int
	NoChange int
	Worse    int
}

func (tally FeedbackTally) Total() int {
	return tally.Helped + tally.NoChange + tally.Worse
}
