// Package metrics exports a run's distribution in the Prometheus text
// format, for pickup by a node_exporter textfile collector.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rubiojr/abilityroll/dice"
	"github.com/rubiojr/abilityroll/stats"
)

const namespace = "abilityroll"

// Collectors holds the metrics for one run.
type Collectors struct {
	Rolls    *prometheus.CounterVec
	Mean     *prometheus.GaugeVec
	Mode     *prometheus.GaugeVec
	StdDev   *prometheus.GaugeVec
	Skewness *prometheus.GaugeVec
}

// NewRegistry returns a registry with the run collectors registered.
func NewRegistry() (*prometheus.Registry, *Collectors) {
	c := &Collectors{
		Rolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rolls_total",
			Help:      "Ability scores rolled, by rule and value.",
		}, []string{"rule", "value"}),
		Mean:     gauge("mean", "Mean ability score."),
		Mode:     gauge("mode", "Most frequent ability score."),
		StdDev:   gauge("stddev", "Population standard deviation of the ability scores."),
		Skewness: gauge("skewness", "Pearson's first skewness coefficient."),
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(c.Rolls, c.Mean, c.Mode, c.StdDev, c.Skewness)
	return reg, c
}

func gauge(name, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, []string{"rule"})
}

// Record stores rows and summary under rule.
func (c *Collectors) Record(rule dice.Rule, rows []stats.Row, sum stats.Summary) {
	name := rule.String()
	for _, r := range rows {
		c.Rolls.WithLabelValues(name, strconv.Itoa(r.Value)).Add(float64(r.Count))
	}
	c.Mean.WithLabelValues(name).Set(sum.Mean)
	c.Mode.WithLabelValues(name).Set(float64(sum.Mode))
	c.StdDev.WithLabelValues(name).Set(sum.StdDev)
	c.Skewness.WithLabelValues(name).Set(sum.Skewness)
}

// WriteTextfile records the run and writes it atomically to path.
func WriteTextfile(path string, rule dice.Rule, rows []stats.Row, sum stats.Summary) error {
	reg, c := NewRegistry()
	c.Record(rule, rows, sum)
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}
