package match

// Levenshtein returns the edit distance between a and b counted in runes,
// so that a mistyped non-ASCII form field costs one edit per character.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	// keep the row on the shorter string
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			above := row[i]
			row[i] = min(above+1, row[i-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(ra)]
}

// LevenshteinNormalized maps the distance of a and b onto a similarity in
// [0, 1]: 1 - distance/max(len). Two empty strings are identical.
func LevenshteinNormalized(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(la, lb))
}
