package seed

import (
	"math/rand"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/healthpilot/sleep-scorer/internal/domain"
	"github.com/healthpilot/sleep-scorer/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments_WellFormed(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)
	first := time.Date(2024, 3, 1, 12, 0, 0, 0, loc)

	segs := Segments(rand.New(rand.NewSource(1)), first, 10, loc)
	require.NotEmpty(t, segs)

	containers := 0
	for _, s := range segs {
		assert.True(t, s.EndTime.After(s.StartTime), "segment %+v", s)
		if scoring.IsContainerLabel(s.StageLabel) {
			containers++
		}
	}
	assert.Equal(t, 10, containers)
}

func TestSegments_Deterministic(t *testing.T) {
	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := Segments(rand.New(rand.NewSource(7)), first, 5, time.UTC)
	b := Segments(rand.New(rand.NewSource(7)), first, 5, time.UTC)
	assert.Equal(t, a, b)
}

func TestSegments_EveryNightScores(t *testing.T) {
	for _, user := range Users {
		t.Run(user.Timezone, func(t *testing.T) {
			loc, err := time.LoadLocation(user.Timezone)
			require.NoError(t, err)
			// Covers the late-March and early-April DST changes.
			first := time.Date(2024, 3, 20, 12, 0, 0, 0, loc)

			segs := Segments(rand.New(rand.NewSource(3)), first, 21, loc)
			results := scoring.ScoreNights(segs, loc, nil)

			scored := 0
			for _, night := range results {
				for _, ep := range night.Episodes {
					assert.Empty(t, ep.Flags, "night %s episode %s", night.NightKey, ep.EpisodeID)
				}
				if night.Score != nil {
					scored++
					assert.Equal(t, domain.EpisodeTypePrimary, night.Primary.EpisodeType)
				}
			}
			assert.Equal(t, 21, scored)
		})
	}
}
