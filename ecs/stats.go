package ecs

import "time"

// PhaseStats reports timing for one manager phase (update or render).
type PhaseStats struct {
	Count int64
	Last  time.Duration
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Total time.Duration
}

type phaseStatsInternal struct {
	count int64
	last  time.Duration
	min   time.Duration
	max   time.Duration
	total time.Duration
}

func (p *phaseStatsInternal) record(d time.Duration) {
	p.count++
	p.last = d
	p.total += d
	if p.count == 1 || d < p.min {
		p.min = d
	}
	if d > p.max {
		p.max = d
	}
}

func (p *phaseStatsInternal) snapshot() PhaseStats {
	avg := time.Duration(0)
	if p.count > 0 {
		avg = p.total / time.Duration(p.count)
	}
	return PhaseStats{
		Count: p.count,
		Last:  p.last,
		Min:   p.min,
		Max:   p.max,
		Avg:   avg,
		Total: p.total,
	}
}

type managerStats struct {
	update phaseStatsInternal
	render phaseStatsInternal
	reaped int64
}

// ManagerStats is a point-in-time snapshot of a manager's population and
// frame timings.
type ManagerStats struct {
	EntityCount    int
	ComponentKinds int
	ReapedTotal    int64
	GroupSizes     [MaxGroups]int
	Update         PhaseStats
	Render         PhaseStats
}

// Stats returns a snapshot of frame statistics. Group sizes reflect the
// buckets as of the last purge, so entities that died since the last Update
// may still be counted.
func (m *Manager) Stats() ManagerStats {
	s := ManagerStats{
		EntityCount:    len(m.entities),
		ComponentKinds: m.registry.Len(),
		ReapedTotal:    m.stats.reaped,
		Update:         m.stats.update.snapshot(),
		Render:         m.stats.render.snapshot(),
	}
	for g := range m.groups {
		s.GroupSizes[g] = len(m.groups[g])
	}
	return s
}
