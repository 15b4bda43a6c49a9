// Package dice rolls ability scores under the supported generation rules
// and tallies how often each score shows up.
package dice

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownRule is returned by ParseRule for names outside the rule set.
var ErrUnknownRule = errors.New("unknown roll rule")

// Rule selects how a single ability score is generated.
type Rule int

const (
	SixDTwenty Rule = iota
	FourKeepThree
	ThreeDSix
)

// SlotsPerTrial is the number of ability scores rolled for one character.
const SlotsPerTrial = 6

// ruleDef holds everything that varies between rules.
type ruleDef struct {
	Name string
	Doc  string
	Min  int
	Max  int
	Roll func(src Source) int
}

var rules = [...]ruleDef{
	SixDTwenty: {
		Name: "SixDTwenty",
		Doc:  "Roll a single d20 per ability.",
		Min:  1,
		Max:  20,
		Roll: rollSixDTwenty,
	},
	FourKeepThree: {
		Name: "FourKeepThree",
		Doc:  "Roll 4d6 per ability and keep the three highest dice.",
		Min:  3,
		Max:  18,
		Roll: rollFourKeepThree,
	},
	ThreeDSix: {
		Name: "ThreeDSix",
		Doc:  "Roll 3d6 per ability and sum them.",
		Min:  3,
		Max:  18,
		Roll: rollThreeDSix,
	},
}

// Rules returns every supported rule in declaration order.
func Rules() []Rule {
	return []Rule{SixDTwenty, FourKeepThree, ThreeDSix}
}

// Names returns the rule names in declaration order.
func Names() []string {
	names := make([]string, 0, len(rules))
	for _, d := range rules {
		names = append(names, d.Name)
	}
	return names
}

// ParseRule resolves a rule by its exact (case-sensitive) name.
func ParseRule(name string) (Rule, error) {
	for i, d := range rules {
		if d.Name == name {
			return Rule(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (choose from %s)", ErrUnknownRule, name, strings.Join(Names(), ", "))
}

// Valid reports whether r is one of the defined rules.
func (r Rule) Valid() bool {
	return r >= 0 && int(r) < len(rules)
}

func (r Rule) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rule(%d)", int(r))
	}
	return rules[r].Name
}

// Doc returns a one-line description of the rule.
func (r Rule) Doc() string {
	if !r.Valid() {
		return ""
	}
	return rules[r].Doc
}

// Bounds returns the inclusive range of scores the rule can produce.
func (r Rule) Bounds() (lo, hi int) {
	d := r.def()
	return d.Min, d.Max
}

// InBounds reports whether v is a score the rule can produce.
func (r Rule) InBounds(v int) bool {
	lo, hi := r.Bounds()
	return v >= lo && v <= hi
}

func (r Rule) def() ruleDef {
	if !r.Valid() {
		panic(&ConsistencyError{Rule: r, Msg: "rule has no definition"})
	}
	return rules[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRule, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(b []byte) error {
	parsed, err := ParseRule(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func rollSixDTwenty(src Source) int {
	return rollDie(src, 20)
}

func rollFourKeepThree(src Source) int {
	four := rollDice(src, 4, 6)
	slices.SortFunc(four, func(a, b int) int { return b - a })
	return sum(four[:3])
}

func rollThreeDSix(src Source) int {
	return sum(rollDice(src, 3, 6))
}

func rollDie(src Source, sides int) int {
	return src.IntN(sides) + 1
}

func rollDice(src Source, count, sides int) []int {
	rolled := make([]int, count)
	for i := range rolled {
		rolled[i] = rollDie(src, sides)
	}
	return rolled
}

func sum(vals []int) int {
	total := 0
	for _, v := range vals {
		total += v
	}
	return total
}
