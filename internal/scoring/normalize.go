package scoring

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/healthpilot/sleep-scorer/internal/domain"
)

// containerMarker identifies whole-session labels that overlap every other stage.
const containerMarker = "in_bed"

// stageRule maps a label substring to a stage. Rules are checked in order.
type stageRule struct {
	contains string
	stage    domain.Stage
}

// stageRules is the vendor label table. Labels matching no rule are light sleep
// ("core", "asleep", "unspecified" and unknown names all land there).
var stageRules = []stageRule{
	{contains: "awake", stage: domain.StageAwake},
	{contains: "rem", stage: domain.StageREM},
	{contains: "deep", stage: domain.StageDeep},
}

// IsContainerLabel reports whether label marks a whole in-bed session.
func IsContainerLabel(label string) bool {
	return strings.Contains(strings.ToLower(label), containerMarker)
}

// ClassifyStage maps a vendor stage label onto a normalized stage.
func ClassifyStage(label string) domain.Stage {
	l := strings.ToLower(label)
	for _, rule := range stageRules {
		if strings.Contains(l, rule.contains) {
			return rule.stage
		}
	}
	return domain.StageLight
}

// Normalize drops container markers, classifies the remaining segments and
// returns them sorted by start. Timestamp ordering is not validated.
func Normalize(raw []domain.RawSegment) []domain.ProcessedSegment {
	out := make([]domain.ProcessedSegment, 0, len(raw))
	for _, seg := range raw {
		if IsContainerLabel(seg.StageLabel) {
			continue
		}
		out = append(out, domain.ProcessedSegment{
			Start:           seg.StartTime,
			End:             seg.EndTime,
			DurationMinutes: roundMinutes(seg.EndTime.Sub(seg.StartTime)),
			Stage:           ClassifyStage(seg.StageLabel),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
