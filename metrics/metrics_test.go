package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/abilityroll/dice"
	"github.com/rubiojr/abilityroll/stats"
)

var (
	rows = []stats.Row{
		{Value: 3, Count: 1, Percent: 50},
		{Value: 18, Count: 1, Percent: 50},
	}
	summary = stats.Summary{Total: 2, Mean: 10.5, Mode: 3, StdDev: 7.5, Skewness: 1}
)

func TestRecord(t *testing.T) {
	_, c := NewRegistry()
	c.Record(dice.ThreeDSix, rows, summary)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Rolls.WithLabelValues("ThreeDSix", "18")))
	assert.Equal(t, 10.5, testutil.ToFloat64(c.Mean.WithLabelValues("ThreeDSix")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Mode.WithLabelValues("ThreeDSix")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.Rolls))
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abilityroll.prom")
	require.NoError(t, WriteTextfile(path, dice.ThreeDSix, rows, summary))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)

	assert.Contains(t, out, `abilityroll_rolls_total{rule="ThreeDSix",value="3"} 1`)
	assert.Contains(t, out, `abilityroll_stddev{rule="ThreeDSix"} 7.5`)
	assert.Contains(t, out, `abilityroll_skewness{rule="ThreeDSix"} 1`)
	assert.Contains(t, out, "# TYPE abilityroll_mean gauge")
}
