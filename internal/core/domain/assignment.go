package domain

import (
	"errors"
	"sort"
)

var ErrUnsatisfiableConstraints = errors.New("unsatisfiable matching constraints")
var ErrAssignmentUnavailable = errors.New("assignment unavailable")

// Pair is one giver→receiver edge of a group's assignment. Each pair is
// persisted as its own document so partial reads never see a half mapping.
type Pair struct {
	Giver    string `json:"giver" bson:"giver"`
	Receiver string `json:"receiver" bson:"receiver"`
}

// Assignment is the full giver→receiver bijection for a group. Once
// persisted it is immutable; roster changes never regenerate it.
type Assignment map[string]string

// AssignmentFromPairs rebuilds the mapping from persisted pairs.
func AssignmentFromPairs(pairs []Pair) Assignment {
	a := make(Assignment, len(pairs))
	for _, p := range pairs {
		a[p.Giver] = p.Receiver
	}
	return a
}

// Pairs flattens the mapping into persistable records, ordered by giver
// so repeated reads of the same assignment compare equal.
func (a Assignment) Pairs() []Pair {
	pairs := make([]Pair, 0, len(a))
	for giver, receiver := range a {
		pairs = append(pairs, Pair{Giver: giver, Receiver: receiver})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Giver < pairs[j].Giver })
	return pairs
}

// Receiver returns the receiver assigned to giver, or "" when the giver
// is not part of the mapping.
func (a Assignment) Receiver(giver string) string {
	return a[giver]
}
