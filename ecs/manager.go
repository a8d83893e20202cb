package ecs

import (
	"context"
	"time"

	"github.com/kamstrup/intmap"
)

// Manager exclusively owns a collection of entities and the group index over
// them, and drives the per-frame update/render dispatch. It is not safe for
// concurrent use; a single driver loop is the sole scheduler.
type Manager struct {
	registry *Registry

	entities []*Entity // insertion order, which is also update/render order
	byID     *intmap.Map[EntityID, *Entity]
	groups   [MaxGroups][]*Entity
	nextID   EntityID

	stats managerStats
}

// NewManager creates an empty manager using the given component registry.
func NewManager(registry *Registry) *Manager {
	return &Manager{
		registry: registry,
		byID:     intmap.New[EntityID, *Entity](256),
	}
}

// Registry returns the manager's component type registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// AddEntity creates a new live entity owned by this manager. The returned
// pointer stays valid until the entity is destroyed and reaped.
func (m *Manager) AddEntity() *Entity {
	m.nextID++
	e := &Entity{
		id:      m.nextID,
		manager: m,
		alive:   true,
	}
	m.entities = append(m.entities, e)
	m.byID.Put(e.id, e)
	return e
}

// Entity returns the entity with the given id, if it has not been reaped.
func (m *Manager) Entity(id EntityID) (*Entity, bool) {
	return m.byID.Get(id)
}

// Len returns the number of entities in the master collection, including
// ones marked dead but not yet reaped.
func (m *Manager) Len() int {
	return len(m.entities)
}

// Entities returns the master collection in insertion order. Read-only: the
// slice is invalidated by the next update pass.
func (m *Manager) Entities() []*Entity {
	return m.entities
}

// addToGroup appends e to the bucket for g. Reached only through
// Entity.AddGroup so the membership mask and the bucket stay in step.
func (m *Manager) addToGroup(e *Entity, g GroupID) {
	m.groups[g] = append(m.groups[g], e)
}

// EntitiesByGroup returns the current bucket for g. Between update passes the
// bucket may still list entities that died or left the group; it is purged at
// the start of every pass and is not stable across one. Callers needing exact
// membership should read it right after Update.
func (m *Manager) EntitiesByGroup(g GroupID) []*Entity {
	if g >= MaxGroups {
		return nil
	}
	return m.groups[g]
}

// Update runs one frame pass in fixed order: every group bucket drops entries
// that are dead or no longer claim the group, dead entities are reaped from
// the master collection and the id index, and every survivor updates in
// insertion order. An entity destroyed during this pass keeps its slot, and
// still renders this frame, until the next pass reaps it.
func (m *Manager) Update(dt float64) {
	start := time.Now()

	for g := range m.groups {
		bucket := m.groups[g]
		live := bucket[:0]
		for _, e := range bucket {
			if e.alive && e.groups.has(uint8(g)) {
				live = append(live, e)
			} else {
				e.bucketed.unset(uint8(g))
			}
		}
		for i := len(live); i < len(bucket); i++ {
			bucket[i] = nil
		}
		m.groups[g] = live
	}

	live := m.entities[:0]
	for _, e := range m.entities {
		if e.alive {
			live = append(live, e)
		} else {
			m.byID.Del(e.id)
			m.stats.reaped++
		}
	}
	for i := len(live); i < len(m.entities); i++ {
		m.entities[i] = nil
	}
	m.entities = live

	for _, e := range m.entities {
		e.Update(dt)
	}

	m.stats.update.record(time.Since(start))
}

// Render draws every entity in insertion order, including entities destroyed
// during the preceding Update.
func (m *Manager) Render(target Surface) {
	start := time.Now()
	for _, e := range m.entities {
		e.Render(target)
	}
	m.stats.render.record(time.Since(start))
}

// Run drives Update and Render at the given interval until ctx is cancelled,
// feeding the elapsed wall time between ticks as dt. Graphical drivers run
// their own loop and call Update/Render directly; Run suits headless
// simulations.
func (m *Manager) Run(ctx context.Context, interval time.Duration, target Surface) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			m.Update(dt)
			m.Render(target)
		}
	}
}
