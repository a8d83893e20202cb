package debugui

import (
	"github.com/plus3/gobs/ecs"
)

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selectedEntityID   ecs.EntityID
	filterText         string
	filterGroup        *ecs.GroupID
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntityID ecs.EntityID
}

type GroupViewerComponent struct {
	selectedGroup *ecs.GroupID
	sortColumn    int
	sortAscending bool
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
