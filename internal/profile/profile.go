package profile

import (
	"sort"

	"github.com/oceanview/argo-backend-go/internal/models"
)

// DefaultWindowSize is the number of fixes grouped into one profile when the
// caller does not ask for a specific window
const DefaultWindowSize = 5

// GroupProfiles partitions a trajectory into fixed-size windows and prepares
// each window as a depth-ordered profile for overlay comparison.
//
// Points missing depth or temperature are dropped before windowing. Windows
// are consecutive and non-overlapping over the filtered sequence; the final
// window may be shorter. Windows with fewer than 2 points are discarded (a
// single point cannot form a curve). Surviving windows are sorted ascending
// by depth and returned in chronological window order.
//
// Grouping is positional, not by physical dive/ascent cycle; use
// GroupProfilesByCycle when the feed carries cycle numbers.
func GroupProfiles(points []models.TrajectoryPoint, windowSize int) []models.ProfileGroup {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}

	filtered := make([]models.TrajectoryPoint, 0, len(points))
	for _, p := range points {
		if p.HasProfileData() {
			filtered = append(filtered, p)
		}
	}

	groups := make([]models.ProfileGroup, 0, (len(filtered)+windowSize-1)/windowSize)
	for start := 0; start < len(filtered); start += windowSize {
		end := start + windowSize
		if end > len(filtered) {
			end = len(filtered)
		}
		if end-start < 2 {
			continue
		}
		groups = append(groups, buildGroup(len(groups), filtered[start:end]))
	}

	return groups
}

// GroupProfilesByCycle groups points by their cycle number instead of by
// position. Points without a cycle number are dropped along with those
// missing depth or temperature. Groups are ordered by ascending cycle number.
func GroupProfilesByCycle(points []models.TrajectoryPoint) []models.ProfileGroup {
	byCycle := make(map[int][]models.TrajectoryPoint)
	var cycles []int
	for _, p := range points {
		if !p.HasProfileData() || p.CycleNumber == nil {
			continue
		}
		c := *p.CycleNumber
		if _, seen := byCycle[c]; !seen {
			cycles = append(cycles, c)
		}
		byCycle[c] = append(byCycle[c], p)
	}
	sort.Ints(cycles)

	groups := make([]models.ProfileGroup, 0, len(cycles))
	for _, c := range cycles {
		window := byCycle[c]
		if len(window) < 2 {
			continue
		}
		groups = append(groups, buildGroup(len(groups), window))
	}

	return groups
}

// buildGroup copies the window, sorts it by depth, and records the depth range.
// Copying keeps the caller's slice untouched.
func buildGroup(index int, window []models.TrajectoryPoint) models.ProfileGroup {
	sorted := make([]models.TrajectoryPoint, len(window))
	copy(sorted, window)
	sort.Slice(sorted, func(i, j int) bool {
		return *sorted[i].Depth < *sorted[j].Depth
	})

	return models.ProfileGroup{
		Index:     index,
		Points:    sorted,
		MinDepthM: *sorted[0].Depth,
		MaxDepthM: *sorted[len(sorted)-1].Depth,
	}
}
