package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanNight is 480 minutes in bed starting at start, one 8 minute awakening.
func cleanNight(start time.Time) []domain.RawSegment {
	runs := []struct {
		label   string
		minutes int
	}{
		{"asleep_core", 60}, {"asleep_deep", 90}, {"asleep_core", 60}, {"awake", 8},
		{"asleep_rem", 100}, {"asleep_core", 90}, {"asleep_deep", 22}, {"asleep_core", 50},
	}

	var segs []domain.RawSegment
	t := start
	for _, r := range runs {
		end := t.Add(time.Duration(r.minutes) * time.Minute)
		segs = append(segs, domain.RawSegment{StartTime: t, EndTime: end, StageLabel: r.label})
		t = end
	}
	return append(segs, domain.RawSegment{StartTime: start, EndTime: t, StageLabel: "in_bed"})
}

func writeInput(t *testing.T, req domain.ComputeScoresRequest) string {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCmd(t *testing.T) {
	path := writeInput(t, domain.ComputeScoresRequest{
		Segments: cleanNight(time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)),
	})

	out, err := execute(t, "", "score", "--file", path, "--tz", "Europe/Prague")
	require.NoError(t, err)

	var resp domain.ComputeScoresResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Europe/Prague", resp.LocalTimezone)
	require.Len(t, resp.Nights, 1)
	assert.Equal(t, "2024-01-15", resp.Nights[0].NightKey)
	require.NotNil(t, resp.Nights[0].Score)
	assert.Equal(t, 78, resp.Nights[0].Score.Score)
	assert.Equal(t, 3, resp.Nights[0].Score.Breakdown.RegularityComponent)
}

func TestScoreCmd_HistoryAndStdin(t *testing.T) {
	tz := "Europe/Prague"
	data, err := json.Marshal(domain.ComputeScoresRequest{
		Segments:      cleanNight(time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)),
		LocalTimezone: &tz,
	})
	require.NoError(t, err)

	// Same 03:00 local midpoint the night before.
	out, err := execute(t, string(data), "score", "--history", "2024-01-14T02:00:00Z")
	require.NoError(t, err)

	var resp domain.ComputeScoresResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Europe/Prague", resp.LocalTimezone)
	require.NotNil(t, resp.Nights[0].Score)
	assert.Equal(t, 5, resp.Nights[0].Score.Breakdown.RegularityComponent)
	assert.Equal(t, 80, resp.Nights[0].Score.Score)
	assert.Equal(t, domain.QualityExcellent, resp.Nights[0].Score.Quality)
}

func TestScoreCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "score")
	assert.ErrorIs(t, err, domain.ErrNoSegments)

	_, err = execute(t, `{"segments": []}`, "score")
	assert.ErrorIs(t, err, domain.ErrNoSegments)

	_, err = execute(t, `{"segments": [`, "score")
	assert.ErrorContains(t, err, "decode input")

	start := time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)
	path := writeInput(t, domain.ComputeScoresRequest{
		Segments: []domain.RawSegment{{StartTime: start, EndTime: start.Add(-time.Hour), StageLabel: "deep"}},
	})
	_, err = execute(t, "", "score", "--file", path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorContains(t, err, "segments[0].end_time")

	path = writeInput(t, domain.ComputeScoresRequest{Segments: cleanNight(start)})
	_, err = execute(t, "", "score", "--file", path, "--history", "yesterday")
	assert.ErrorContains(t, err, "invalid --history value")

	for _, tz := range []string{"Europe/Prag", "Local"} {
		out, err := execute(t, "", "score", "--file", path, "--tz", tz)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tz)
		assert.ErrorContains(t, err, "invalid --tz")
		assert.Empty(t, out)
	}

	_, err = execute(t, "", "score", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNormalizeCmd(t *testing.T) {
	start := time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)
	path := writeInput(t, domain.ComputeScoresRequest{Segments: cleanNight(start)})

	out, err := execute(t, "", "normalize", "-f", path)
	require.NoError(t, err)

	var segs []domain.ProcessedSegment
	require.NoError(t, json.Unmarshal([]byte(out), &segs))
	require.Len(t, segs, 8)
	assert.Equal(t, domain.StageLight, segs[0].Stage)
	assert.Equal(t, domain.StageDeep, segs[1].Stage)
	assert.Equal(t, domain.StageAwake, segs[3].Stage)
	assert.Equal(t, 100, segs[4].DurationMinutes)
}
