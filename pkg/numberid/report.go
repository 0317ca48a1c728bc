package numberid

import "strings"

// Negative is the value reported when a classifier finds nothing.
const Negative = "No"

// Report is the outcome of one classifier.
type Report struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (r Report) String() string {
	return r.Label + ": " + r.Value
}

// Positive reports whether the classifier found something.
func (r Report) Positive() bool {
	return r.Value != Negative
}

// Result pairs a dispatched classifier name with its report or error.
type Result struct {
	Name   string
	Report Report
	Err    error
}

func yesNo(ok bool) string {
	if ok {
		return "Yes"
	}
	return Negative
}

func joinOrNo(hits []string) string {
	if len(hits) == 0 {
		return Negative
	}
	return strings.Join(hits, ", ")
}
