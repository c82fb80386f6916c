package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/roulette/pkg/roulette"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunDemo(&buf))

	out := buf.String()
	assert.Contains(t, out, "Spinning the API roulette...")
	assert.Contains(t, out, "Status Code: ")
	assert.Contains(t, out, "Response Type: ")
	assert.Contains(t, out, "Response:\n")
	assert.True(t, strings.HasSuffix(out, "Good luck with that integration!\n"))
}

func TestRootRunsDemo(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Spinning the API roulette...")
}

func TestRootSeedIsReproducible(t *testing.T) {
	first, _, err := execute(t, "--seed", "7")
	require.NoError(t, err)
	second, _, err := execute(t, "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRootRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestSpinJSON(t *testing.T) {
	out, _, err := execute(t, "spin", "--shape", roulette.ShapeNullInsteadOfEmptyArray, "--success-rate", "0", "--format", "json")
	require.NoError(t, err)

	var spin struct {
		ID       string                 `json:"id"`
		Status   int                    `json:"status"`
		Shape    string                 `json:"shape"`
		Kind     string                 `json:"kind"`
		Response map[string]interface{} `json:"response"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &spin))
	assert.NotEmpty(t, spin.ID)
	assert.True(t, roulette.IsKnownStatus(spin.Status))
	assert.Equal(t, roulette.ShapeNullInsteadOfEmptyArray, spin.Shape)
	assert.Equal(t, "structured", spin.Kind)
	assert.Equal(t, map[string]interface{}{"items": nil, "total": float64(0)}, spin.Response)
}

func TestSpinTextRaw(t *testing.T) {
	out, _, err := execute(t, "spin", "--shape", "plain_*", "--success-rate", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Response Type: raw\n")
	assert.Contains(t, out, "Server Error: Please try again later\n")
}

func TestSpinYAMLDocuments(t *testing.T) {
	out, _, err := execute(t, "spin", "-n", "3", "--seed", "1", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "---\n"))
	assert.Equal(t, 3, strings.Count(out, "\nstatus: "))
}

func TestSpinQuery(t *testing.T) {
	out, _, err := execute(t, "spin", "-n", "2", "--success-rate", "1", "--query", "$.data.timestamp")
	require.NoError(t, err)
	assert.Equal(t, "\"2023-12-25T25:61:61Z\"\n\"2023-12-25T25:61:61Z\"\n", out)
}

func TestSpinQuerySkipsRawBodies(t *testing.T) {
	out, stderr, err := execute(t, "spin", "--shape", "xml_*", "--success-rate", "0", "--query", "$.x", "--log-level", "warn")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "skipping query on raw body")
}

func TestSpinDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "spin", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &entry))
	assert.Equal(t, "spin", entry["msg"])
	assert.Contains(t, entry, "shape")
}

func TestSpinErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad format", []string{"spin", "--format", "toml"}, "unknown format"},
		{"bad rate", []string{"spin", "--success-rate", "2"}, "successRate"},
		{"no shapes", []string{"spin", "--shape", "nope"}, "matches no shapes"},
		{"zero count", []string{"spin", "-n", "0"}, "--count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestShapes(t *testing.T) {
	out, _, err := execute(t, "shapes")
	require.NoError(t, err)
	assert.Contains(t, out, "Structured:\n")
	assert.Contains(t, out, "Raw:\n")
	assert.Contains(t, out, "Null Instead Of Empty Array")
	assert.Less(t, strings.Index(out, "Structured:"), strings.Index(out, "Raw:"))
	assert.Less(t, strings.Index(out, "Raw:"), strings.Index(out, roulette.ShapeXML))
}

func TestShapesJSON(t *testing.T) {
	out, _, err := execute(t, "shapes", "--json")
	require.NoError(t, err)

	var shapes []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &shapes))
	require.Len(t, shapes, 11)
	assert.Equal(t, roulette.ShapeSuccess, shapes[0]["name"])
	assert.NotContains(t, shapes[0], "Schema")
}

func TestStatsJSON(t *testing.T) {
	out, _, err := execute(t, "stats", "-n", "5000", "--seed", "3", "--json")
	require.NoError(t, err)

	var stats roulette.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, int64(5000), stats.Spins)
	assert.InDelta(t, 0.20, stats.ExoticRate(), 0.03)
	assert.InDelta(t, 0.30, stats.SuccessRate(), 0.03)
}

func TestStatsText(t *testing.T) {
	out, _, err := execute(t, "stats", "-n", "200", "--seed", "4", "--shape", "cors_*")
	require.NoError(t, err)
	assert.Contains(t, out, "Spins: 200\n")
	assert.Contains(t, out, "SHAPE")
	assert.Contains(t, out, roulette.ShapeLeakedCORSHeader)
	assert.NotContains(t, out, roulette.ShapeXML)
	assert.Contains(t, out, "STATUS")
}
