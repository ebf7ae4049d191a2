package boyermoore

// alphabetSize is the symbol domain of the engine. Patterns and texts are raw
// bytes, so every possible symbol has a slot in the bad character table.
const alphabetSize = 256

// badCharTable records, for every byte value, the index of its last
// occurrence in the pattern, or -1 for bytes that do not occur.
func badCharTable(pattern []byte) [alphabetSize]int {
	var table [alphabetSize]int
	for i := range table {
		table[i] = -1
	}
	for i, c := range pattern {
		table[c] = i
	}
	return table
}

// goodSuffixTable builds the shift table indexed by mismatch position. Entry
// k holds the window advance after the suffix pattern[k:] has matched, so
// entry 0 applies after a full match and entry m after an immediate mismatch.
// The table has m+1 entries; an empty pattern yields [0].
func goodSuffixTable(pattern []byte) []int {
	m := len(pattern)
	shifts := make([]int, m+1)
	if m == 0 {
		return shifts
	}

	// Pass 1: walk the border chain of every suffix. When the suffix
	// starting at i cannot extend the border ending at j, the distance j-i
	// is the shift for a mismatch just before position j.
	borderPos := make([]int, m+1)
	i, j := m, m+1
	borderPos[i] = j
	for i > 0 {
		for j <= m && pattern[i-1] != pattern[j-1] {
			if shifts[j] == 0 {
				shifts[j] = j - i
			}
			j = borderPos[j]
		}
		i--
		j--
		borderPos[i] = j
	}

	// Pass 2: positions still without a shift fall back to the widest
	// border of the whole pattern, stepping down the chain as positions
	// pass each border boundary.
	j = borderPos[0]
	for i = 0; i <= m; i++ {
		if shifts[i] == 0 {
			shifts[i] = j
		}
		if i == j {
			j = borderPos[j]
		}
	}
	return shifts
}
