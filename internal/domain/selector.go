package domain

import "math/rand/v2"

// QuestionSelector picks the next quiz question for a caller-held session.
// It keeps no state between calls; the zero value is not usable, use
// NewQuestionSelector.
type QuestionSelector struct {
	intN func(n int) int
}

// NewQuestionSelector returns a selector drawing from the global,
// goroutine-safe math/rand/v2 source.
func NewQuestionSelector() *QuestionSelector {
	return &QuestionSelector{intN: rand.IntN}
}

// NewQuestionSelectorWithSource draws from src. A *rand.Rand is not safe for
// concurrent use, so the returned selector must not be shared across goroutines.
func NewQuestionSelectorWithSource(src rand.Source) *QuestionSelector {
	return &QuestionSelector{intN: rand.New(src).IntN}
}

// SelectNext returns a question from pool whose ID is not in previouslyShown,
// chosen uniformly among those eligible. The boolean is false when no eligible
// question remains (the quiz is finished); that is not an error.
//
// IDs in previouslyShown that are not in pool are ignored, as are nil entries
// in pool.
func (s *QuestionSelector) SelectNext(pool []*Question, previouslyShown []string) (*Question, bool) {
	shown := make(map[string]struct{}, len(previouslyShown))
	for _, id := range previouslyShown {
		shown[id] = struct{}{}
	}

	eligible := make([]*Question, 0, len(pool))
	for _, q := range pool {
		if q == nil {
			continue
		}
		if _, seen := shown[q.ID]; seen {
			continue
		}
		eligible = append(eligible, q)
	}

	switch len(eligible) {
	case 0:
		return nil, false
	case 1:
		return eligible[0], true
	default:
		return eligible[s.intN(len(eligible))], true
	}
}
