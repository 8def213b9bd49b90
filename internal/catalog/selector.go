package catalog

import (
	"errors"
	"math/rand"
)

// ErrSelectionExhausted means every candidate question turned out to be
// unselectable (no correct answer id in the source data).
var ErrSelectionExhausted = errors.New("no selectable question found")

// maxAttempts bounds how many category/grouping draws a single selection may
// make before giving up.
const maxAttempts = 8

// Selector picks random questions from a Source. It is safe for concurrent
// use; the package-level rand functions serialize internally.
type Selector struct {
	source Source
}

func NewSelector(source Source) *Selector {
	return &Selector{source: source}
}

// Pick selects a uniformly random category, a random grouping within it and a
// random selectable question within that grouping. Questions without a correct
// answer id are skipped; the grouping is scanned in shuffled order, so any
// grouping containing a selectable question always yields one. Returns
// ErrNoCategories when the source is empty and ErrSelectionExhausted when all
// candidates are malformed.
func (s *Selector) Pick() (Question, error) {
	categories, err := s.source.Categories()
	if err != nil {
		return Question{}, err
	}

	var candidates []Category
	for _, c := range categories {
		if len(c.Groupings) > 0 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Question{}, ErrNoCategories
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		cat := candidates[rand.Intn(len(candidates))]
		grouping := cat.Groupings[rand.Intn(len(cat.Groupings))]
		if len(grouping.Questions) == 0 {
			continue
		}

		order := rand.Perm(len(grouping.Questions))
		for _, i := range order {
			if q := grouping.Questions[i]; q.Selectable() {
				return q, nil
			}
		}
	}

	return Question{}, ErrSelectionExhausted
}
