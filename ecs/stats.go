package ecs

import "time"

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	RunSystemCount  int
	Frames          int64
	TotalExecutions int64
	// Systems holds one entry per ExecuteSystem, in run order. It is empty
	// unless the scheduler was created WithStats.
	Systems []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (st *systemStatsInternal) record(d time.Duration) {
	st.executionCount++
	st.lastDuration = d
	st.totalDuration += d
	if d < st.minDuration {
		st.minDuration = d
	}
	if d > st.maxDuration {
		st.maxDuration = d
	}
}

type schedulerStats struct {
	frames  int64
	systems []*systemStatsInternal
}

func (st *schedulerStats) add(name string) {
	st.systems = append(st.systems, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

func (st *schedulerStats) reset() {
	st.frames = 0
	clear(st.systems)
	st.systems = st.systems[:0]
}

// StatsEnabled reports whether the scheduler was created WithStats.
func (s *Scheduler[W]) StatsEnabled() bool {
	return s.stats != nil
}

// Stats returns a snapshot of execution statistics.
func (s *Scheduler[W]) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:    len(s.all),
		RunSystemCount: len(s.run),
	}
	if s.stats == nil {
		return stats
	}

	stats.Frames = s.stats.frames
	stats.Systems = make([]SystemStats, len(s.stats.systems))

	var totalExecs int64
	for i, internal := range s.stats.systems {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
