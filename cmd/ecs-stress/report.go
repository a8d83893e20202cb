package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/gobs/ecs"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Entities int
	Groups   int
	Churn    bool

	// Results
	TotalTime     time.Duration
	FinalEntities int
	Stats         ecs.ManagerStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Entity Manager Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Target Population:** {{.Entities}}
- **Groups:** {{.Groups}}
- **Churn:** {{.Churn}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Update Passes:** {{.Stats.Update.Count}}
- **Entities Reaped:** {{.Stats.ReapedTotal}}
- **Final Population:** {{.FinalEntities}}
- **Update Pass:**
  - **Avg:** {{.Stats.Update.Avg}}
  - **Min:** {{.Stats.Update.Min}}
  - **Max:** {{.Stats.Update.Max}}
- **Render Pass:**
  - **Avg:** {{.Stats.Render.Avg}}
  - **Min:** {{.Stats.Render.Min}}
  - **Max:** {{.Stats.Render.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- Total GC Pause: {{.MemStatsEnd.PauseTotalNs | ns}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
