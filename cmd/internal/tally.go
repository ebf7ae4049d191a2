package internal

import "sort"

// Tally counts report lines by label.
type Tally map[string]int

func (t Tally) Add(label string) {
	t[label]++
}

func (t Tally) Total() int {
	sum := 0
	for _, v := range t {
		sum += v
	}
	return sum
}

// Labels returns the tallied labels, highest count first.
func (t Tally) Labels() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return t[keys[i]] > t[keys[j]]
	})
	return keys
}
