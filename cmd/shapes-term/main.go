// Command shapes-term runs the falling-shapes demo on a terminal: shapes are
// drawn as colored cell runs via tcell. Escape or Ctrl-C quits.
package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/gobs/components"
	"github.com/plus3/gobs/ecs"
	"github.com/plus3/gobs/render/terminal"
)

const groupShapes ecs.GroupID = 0

func main() {
	interval := flag.Duration("interval", 5*time.Second, "time between spawn batches")
	batch := flag.Int("batch", 5, "entities per spawn batch")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	manager := ecs.NewManager(ecs.NewRegistry())

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	const frame = time.Second / 30
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	spawnTimer := interval.Seconds() // first batch immediately

	for {
		select {
		case <-quit:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			spawnTimer += dt
			if spawnTimer >= interval.Seconds() {
				spawnTimer = 0
				for i := 0; i < *batch; i++ {
					e := manager.AddEntity()
					e.MustAddComponent(components.NewCounter())
					e.MustAddComponent(components.NewShape(rng))
					e.MustAddComponent(components.NewKill(components.DefaultKillThreshold))
					if err := e.AddGroup(groupShapes); err != nil {
						log.Fatal(err)
					}
				}
			}

			manager.Update(dt)

			screen.Clear()
			manager.Render(terminal.NewSurface(screen, components.SpawnFieldW, components.SpawnFieldH))
			screen.Show()
		}
	}
}
