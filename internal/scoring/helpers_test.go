package scoring

import (
	"time"
	_ "time/tzdata"

	"github.com/healthpilot/sleep-scorer/internal/domain"
)

type stageSpan struct {
	label   string
	minutes int
}

// contiguous lays spans end to end starting at start.
func contiguous(start time.Time, spans ...stageSpan) []domain.RawSegment {
	out := make([]domain.RawSegment, 0, len(spans))
	cur := start
	for _, s := range spans {
		end := cur.Add(time.Duration(s.minutes) * time.Minute)
		out = append(out, domain.RawSegment{StartTime: cur, EndTime: end, StageLabel: s.label})
		cur = end
	}
	return out
}

func processed(start time.Time, minutes int, stage domain.Stage) domain.ProcessedSegment {
	return domain.ProcessedSegment{
		Start:           start,
		End:             start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
		Stage:           stage,
	}
}

// cleanNight is 23:00-07:00 UTC on 2024-01-15 with 8 min awake, 90 deep,
// 100 REM and 282 light, wrapped in an in_bed container marker.
func cleanNight() []domain.RawSegment {
	start := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)
	segs := contiguous(start,
		stageSpan{"asleep_core", 60},
		stageSpan{"asleep_deep", 90},
		stageSpan{"asleep_core", 60},
		stageSpan{"awake", 8},
		stageSpan{"asleep_rem", 50},
		stageSpan{"asleep_core", 100},
		stageSpan{"asleep_rem", 50},
		stageSpan{"asleep_core", 62},
	)
	return append(segs, domain.RawSegment{
		StartTime:  start,
		EndTime:    start.Add(8 * time.Hour),
		StageLabel: "in_bed",
	})
}

// fragmentedNight is 4h in bed from 00:00 UTC on 2024-01-16 with six
// awakenings, the longest 35 minutes.
func fragmentedNight() []domain.RawSegment {
	return contiguous(time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		stageSpan{"asleep_core", 30},
		stageSpan{"awake", 35},
		stageSpan{"asleep_core", 30},
		stageSpan{"awake", 3},
		stageSpan{"asleep_deep", 20},
		stageSpan{"awake", 3},
		stageSpan{"asleep_core", 30},
		stageSpan{"awake", 3},
		stageSpan{"asleep_rem", 20},
		stageSpan{"awake", 3},
		stageSpan{"asleep_core", 30},
		stageSpan{"awake", 3},
		stageSpan{"asleep_core", 30},
	)
}

func buildOne(raw []domain.RawSegment, loc *time.Location) domain.SleepEpisode {
	clusters := Cluster(Normalize(raw))
	if len(clusters) != 1 {
		panic("expected exactly one cluster")
	}
	return BuildEpisode(clusters[0], loc)
}

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
