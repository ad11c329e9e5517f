package trivia

// RandFunc returns a uniformly random int in [0, n). Injected so quiz
// draws are seedable in tests.
type RandFunc func(n int) int

// selectUnseen removes every previously seen id from the pool and draws one
// survivor uniformly at random. The second return is false when the pool is
// exhausted for this round.
func selectUnseen(pool []Question, previous []int, rng RandFunc) (Question, bool) {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	candidates := pool[:0:0]
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return Question{}, false
	}
	return candidates[rng(len(candidates))], true
}
