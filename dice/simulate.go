package dice

import (
	"fmt"
	"sort"
)

// Scores is one character's worth of ability scores.
type Scores [SlotsPerTrial]int

// Table counts how many times each score value was rolled.
type Table map[int]int

// Total returns the number of scores tallied.
func (t Table) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// Values returns the distinct scores in ascending order.
func (t Table) Values() []int {
	vals := make([]int, 0, len(t))
	for v := range t {
		vals = append(vals, v)
	}
	sort.Ints(vals)
	return vals
}

// ConsistencyError reports a roll that broke its rule's guarantees. It
// signals a bug and is raised with panic, never returned.
type ConsistencyError struct {
	Rule  Rule
	Value int
	Msg   string
}

func (e *ConsistencyError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("dice: %s: %s", e.Rule, e.Msg)
	}
	lo, hi := e.Rule.Bounds()
	return fmt.Sprintf("dice: %s rolled %d outside [%d, %d]", e.Rule, e.Value, lo, hi)
}

// Roll generates one character's scores under rule.
func Roll(src Source, rule Rule) Scores {
	roll := rule.def().Roll
	var s Scores
	for i := range s {
		s[i] = roll(src)
	}
	return s
}

// Simulate rolls iterations characters and tallies every score. Zero or
// negative iterations yield an empty table.
//
// Simulate panics with a *ConsistencyError if a roll falls outside the
// rule's bounds.
func Simulate(src Source, rule Rule, iterations int) Table {
	counts := make(Table)
	for range max(iterations, 0) {
		for _, v := range Roll(src, rule) {
			if !rule.InBounds(v) {
				panic(&ConsistencyError{Rule: rule, Value: v})
			}
			counts[v]++
		}
	}
	return counts
}
