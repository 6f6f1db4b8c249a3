package service

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/famgift/exchange-system/internal/core/domain"
)

const defaultMaxAttempts = 1000

// Matcher generates gift assignments by rejection sampling: shuffle the
// receivers, accept iff nobody gives to themselves or to an excluded
// receiver. Monte-Carlo rather than constructive, which is fine at family
// sizes; the attempt bound keeps adversarial exclusion sets from hanging.
type Matcher struct {
	maxAttempts int
}

// NewMatcher returns a Matcher with the given attempt bound.
// Non-positive values fall back to defaultMaxAttempts.
func NewMatcher(maxAttempts int) *Matcher {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Matcher{maxAttempts: maxAttempts}
}

// Match pairs every giver with a receiver. Fewer than two participants can
// never satisfy the no-self-gift rule, so that fails outright instead of
// returning a degenerate mapping.
func (m *Matcher) Match(participants []string, exclusions map[string][]string) (domain.Assignment, int, error) {
	if len(participants) < 2 {
		return nil, 0, fmt.Errorf("%w: need at least 2 participants, got %d",
			domain.ErrUnsatisfiableConstraints, len(participants))
	}

	givers := participants
	receivers := slices.Clone(participants)

	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		rand.Shuffle(len(receivers), func(i, j int) {
			receivers[i], receivers[j] = receivers[j], receivers[i]
		})

		if validPairing(givers, receivers, exclusions) {
			a := make(domain.Assignment, len(givers))
			for i, giver := range givers {
				a[giver] = receivers[i]
			}
			return a, attempt, nil
		}
	}

	return nil, m.maxAttempts, fmt.Errorf("%w: no valid pairing found within %d attempts",
		domain.ErrUnsatisfiableConstraints, m.maxAttempts)
}

func validPairing(givers, receivers []string, exclusions map[string][]string) bool {
	for i, giver := range givers {
		if receivers[i] == giver {
			return false
		}
		if slices.Contains(exclusions[giver], receivers[i]) {
			return false
		}
	}
	return true
}
