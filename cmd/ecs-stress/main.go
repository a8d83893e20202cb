package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/gobs/components"
	"github.com/plus3/gobs/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The entity population to maintain.")
	groupCount := flag.Int("groups", 8, "The number of groups to spread entities over.")
	churn := flag.Bool("churn", true, "Respawn a fresh entity for every reaped one.")
	profileMode := flag.String("profile", "", "Enable profiling: cpu or mem.")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		log.Fatalf("unknown profile mode %q (want cpu or mem)", *profileMode)
	}

	if *groupCount < 1 || *groupCount > ecs.MaxGroups {
		log.Fatalf("groups must be between 1 and %d", ecs.MaxGroups)
	}

	log.Println("Starting entity manager stress test...")

	// Fixed seed so runs are comparable.
	rng := rand.New(rand.NewPCG(1, 2))
	manager := ecs.NewManager(ecs.NewRegistry())

	// 1. Populate the manager with the initial entity population.
	log.Printf("Populating manager with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		spawnEntity(manager, rng, *groupCount)
	}
	log.Println("Population complete.")

	report := &Report{
		Duration: *duration,
		Entities: *entityCount,
		Groups:   *groupCount,
		Churn:    *churn,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	// 2. Run the simulation loop. Kill thresholds are randomized, so entities
	// die and get reaped continuously.
	log.Printf("Running simulation for %s...\n", *duration)

	surface := ecs.NopSurface{}
	startTime := time.Now()
	lastFrameTime := startTime

	for time.Since(startTime) < *duration {
		now := time.Now()
		dt := now.Sub(lastFrameTime).Seconds()
		lastFrameTime = now

		before := manager.Len()
		manager.Update(dt)
		manager.Render(surface)

		if *churn {
			for reaped := before - manager.Len(); reaped > 0; reaped-- {
				spawnEntity(manager, rng, *groupCount)
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FinalEntities = manager.Len()
	report.Stats = manager.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate report to console.
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// spawnEntity creates one demo entity with a randomized lifetime and a random
// group assignment.
func spawnEntity(m *ecs.Manager, rng *rand.Rand, groups int) {
	e := m.AddEntity()
	e.MustAddComponent(components.NewCounter())
	e.MustAddComponent(components.NewShape(rng))
	e.MustAddComponent(components.NewKill(0.5 + rng.Float64()*2.5))
	if err := e.AddGroup(ecs.GroupID(rng.IntN(groups))); err != nil {
		log.Fatal(err)
	}
}
