package jsontool

// matchCandidate matches string content starting at pos (the character
// after the opening quote) against a sorted list of ASCII candidates.
//
// Because the candidates are sorted, shared prefixes cluster: the match
// keeps a window [min, max) of still-viable candidates and a column i
// along the string. Each source character first advances min past
// candidates that are too short or differ at column i, then shrinks max to
// the run still sharing that character. The cost is O(longest candidate)
// regardless of how many candidates there are, and nothing is allocated.
//
// On success it returns the candidate index and the position just past the
// closing quote. On a mismatch, or when the key contains an escape, it
// returns idx == -1. Callers must guarantee len(cands) > 0.
func matchCandidate[T Seq](src T, pos int, cands []string) (idx, end int) {
	min, max := 0, len(cands)
	i := 0
	for pos < len(src) {
		c := src[pos]
		if c == '"' {
			if len(cands[min]) == i {
				return min, pos + 1
			}
			return -1, 0
		}
		if c == '\\' {
			return -1, 0
		}
		for min < max && (len(cands[min]) <= i || cands[min][i] != c) {
			min++
		}
		if min == max {
			return -1, 0
		}
		j := min + 1
		for j < max && len(cands[j]) > i && cands[j][i] == c {
			j++
		}
		max = j
		i++
		pos++
	}
	return -1, 0
}

// checkCandidates panics if cands is empty. The candidate-matching
// operations require a non-empty, sorted list; an empty list is a caller
// bug of the same class as writing to a nil map. Sortedness is not checked.
func checkCandidates(op string, cands []string) {
	if len(cands) == 0 {
		panic(&StateError{Op: op, Msg: "empty candidate list"})
	}
}
