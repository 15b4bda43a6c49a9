// Package stats turns a frequency table into a percent distribution and
// its summary statistics.
package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/rubiojr/abilityroll/dice"
)

// ErrDivisionByZero is returned when the statistics are undefined: the
// table is empty or every roll had the same value.
var ErrDivisionByZero = errors.New("division by zero")

// Row is one line of the distribution table.
type Row struct {
	Value   int     `json:"value" yaml:"value"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Summary holds the scalar statistics of a distribution.
type Summary struct {
	Total    int     `json:"total" yaml:"total"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Mode     int     `json:"mode" yaml:"mode"`
	StdDev   float64 `json:"stddev" yaml:"stddev"`
	Skewness float64 `json:"skewness" yaml:"skewness"`
}

// Rows returns the distribution sorted by ascending value.
func Rows(t dice.Table) ([]Row, error) {
	total := t.Total()
	if total == 0 {
		return nil, fmt.Errorf("empty frequency table: %w", ErrDivisionByZero)
	}
	rows := make([]Row, 0, len(t))
	for _, v := range t.Values() {
		c := t[v]
		rows = append(rows, Row{
			Value:   v,
			Count:   c,
			Percent: 100 * float64(c) / float64(total),
		})
	}
	return rows, nil
}

// Analyze computes the distribution rows and summary statistics of t.
// The standard deviation is the population one, weighted by each value's
// share of the rolls. Mode ties resolve to the smallest value.
func Analyze(t dice.Table) ([]Row, Summary, error) {
	rows, err := Rows(t)
	if err != nil {
		return nil, Summary{}, err
	}

	values := make([]float64, len(rows))
	weights := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = float64(r.Value)
		weights[i] = r.Percent / 100
	}
	mean, stddev := stat.PopMeanStdDev(values, weights)
	mode := Mode(rows)

	skew, err := PearsonFirstSkewness(mean, float64(mode), stddev)
	if err != nil {
		return nil, Summary{}, err
	}

	return rows, Summary{
		Total:    t.Total(),
		Mean:     mean,
		Mode:     mode,
		StdDev:   stddev,
		Skewness: skew,
	}, nil
}

// Mode returns the value with the highest count. rows must be sorted
// ascending; on ties the first row wins.
func Mode(rows []Row) int {
	best := -1
	for i, r := range rows {
		if best < 0 || r.Count > rows[best].Count {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return rows[best].Value
}

// PearsonFirstSkewness returns (mean - mode) / stddev.
func PearsonFirstSkewness(mean, mode, stddev float64) (float64, error) {
	if stddev == 0 {
		return 0, fmt.Errorf("degenerate distribution (standard deviation is 0): %w", ErrDivisionByZero)
	}
	return (mean - mode) / stddev, nil
}
