package config

// GapSize returns the gap size for an obstacle spawned at the given score.
// The gap narrows by one cell per point and never drops below MinGapSize.
func (o Obstacles) GapSize(score int) int {
	return max(o.MinGapSize, o.BaseGapSize-score)
}

// GapRange returns the number of distinct gap centres.
func (o Obstacles) GapRange() int {
	return o.GapMax - o.GapMin
}
