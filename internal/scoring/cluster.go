package scoring

import "github.com/healthpilot/sleep-scorer/internal/domain"

// Cluster splits time-ordered segments into episodes wherever the gap after the
// previous segment reaches LongAwakeSplitMinutes. Shorter gaps stay inside one
// episode and are penalized as fragmentation instead.
func Cluster(segments []domain.ProcessedSegment) [][]domain.ProcessedSegment {
	if len(segments) == 0 {
		return nil
	}

	var clusters [][]domain.ProcessedSegment
	current := []domain.ProcessedSegment{segments[0]}

	for _, seg := range segments[1:] {
		last := current[len(current)-1]
		gap := seg.Start.Sub(last.End).Minutes()
		if gap >= LongAwakeSplitMinutes {
			clusters = append(clusters, current)
			current = []domain.ProcessedSegment{seg}
			continue
		}
		current = append(current, seg)
	}

	return append(clusters, current)
}
