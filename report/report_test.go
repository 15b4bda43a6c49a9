package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rubiojr/abilityroll/dice"
	"github.com/rubiojr/abilityroll/stats"
)

func sampleResult() Result {
	seed := int64(42)
	return Result{
		Rule:       dice.ThreeDSix,
		Iterations: 1,
		Seed:       &seed,
		Rows: []stats.Row{
			{Value: 3, Count: 1, Percent: 50},
			{Value: 18, Count: 1, Percent: 50},
		},
		Summary: stats.Summary{Total: 2, Mean: 10.5, Mode: 3, StdDev: 7.5, Skewness: 1},
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteTextPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), Text, false))

	want := "value    count    percent\n" +
		"    3        1  50.000000\n" +
		"   18        1  50.000000\n" +
		"\n" +
		"Mean: 10.500000\n" +
		"Mode: 3\n" +
		"Standard deviation: 7.500000\n" +
		"Skewness: 1.000000\n"
	assert.Equal(t, want, buf.String())
	assert.NotContains(t, buf.String(), "\033[")
}

func TestWriteTextColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), Text, true))
	assert.Contains(t, buf.String(), "\033[33m    3        1  50.000000\033[0m")
	assert.Contains(t, buf.String(), "\033[36m10.500000\033[0m")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), JSON, true))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "ThreeDSix", got["rule"])
	assert.Equal(t, 42.0, got["seed"])
	summary := got["summary"].(map[string]any)
	assert.Equal(t, 10.5, summary["mean"])
	assert.Equal(t, 3.0, summary["mode"])
	assert.Len(t, got["distribution"], 2)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult(), YAML, false))

	var got struct {
		Rule         string      `yaml:"rule"`
		Iterations   int         `yaml:"iterations"`
		Distribution []stats.Row `yaml:"distribution"`
		Summary      stats.Summary
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "ThreeDSix", got.Rule)
	assert.Equal(t, 1, got.Iterations)
	assert.Equal(t, sampleResult().Rows, got.Distribution)
	assert.Equal(t, 7.5, got.Summary.StdDev)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleResult(), Format("csv"), false)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDone(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Done(&buf, "out.png", false))
	assert.Equal(t, "Wrote plot image to: out.png\n", buf.String())
}

func TestAutoColorNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("ABILITYROLL_FORCE_COLOR", "1")
	assert.False(t, AutoColor(nil))
}
