// Command falling-shapes is the windowed demo driver: every spawn interval
// it creates a batch of entities composed of Counter + Shape + Kill, tags
// them into the shapes group, and runs the manager's update/render passes
// each frame until escape is pressed or the window closes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/gobs/components"
	"github.com/plus3/gobs/ecs"
	ebitenrender "github.com/plus3/gobs/render/ebiten"
)

// GroupShapes tags every spawned entity so external queries (and the debug
// tooling) can fetch them in bulk.
const GroupShapes ecs.GroupID = 0

var errQuit = errors.New("quit")

type game struct {
	manager *ecs.Manager
	rng     *rand.Rand

	cfg        Config
	cfgUpdates <-chan Config

	spawnTimer float64
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	select {
	case cfg := <-g.cfgUpdates:
		g.cfg = cfg
		log.Printf("config reloaded: batch=%d interval=%.1fs kill_after=%.1fs",
			cfg.Spawn.Batch, cfg.Spawn.Interval, cfg.KillAfter)
	default:
	}

	dt := 1.0 / float64(ebiten.TPS())

	g.spawnTimer += dt
	if g.spawnTimer >= g.cfg.Spawn.Interval {
		g.spawnTimer = 0
		for i := 0; i < g.cfg.Spawn.Batch; i++ {
			g.spawn()
		}
	}

	g.manager.Update(dt)
	return nil
}

func (g *game) spawn() {
	e := g.manager.AddEntity()
	e.MustAddComponent(components.NewCounter())
	e.MustAddComponent(components.NewShape(g.rng))
	e.MustAddComponent(components.NewKill(g.cfg.KillAfter))
	if err := e.AddGroup(GroupShapes); err != nil {
		log.Fatal(err)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.manager.Render(ebitenrender.NewSurface(screen))

	stats := g.manager.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("entities: %d  update: %s  render: %s",
		stats.EntityCount, stats.Update.Last, stats.Render.Last))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file, watched for changes")
	seed := flag.Uint64("seed", 0, "seed for the shape random source (0 picks a random one)")
	flag.Parse()

	cfg := defaultConfig()
	cfgUpdates := make(chan Config, 1)
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
		go watchConfig(*configPath, cfgUpdates)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, 0))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g := &game{
		manager:    ecs.NewManager(ecs.NewRegistry()),
		rng:        rng,
		cfg:        cfg,
		cfgUpdates: cfgUpdates,
		spawnTimer: cfg.Spawn.Interval, // first batch on the first frame
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("falling shapes")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}

// watchConfig re-reads the config file on every write and hands the result
// to the game loop. The loop drains the channel on its own thread, so the
// simulation itself stays single-threaded.
func watchConfig(path string, updates chan<- Config) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("config watch disabled: %v", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		log.Printf("config watch disabled: %v", err)
		return
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := loadConfig(path)
			if err != nil {
				log.Printf("config reload skipped: %v", err)
				continue
			}
			select {
			case updates <- cfg:
			default: // loop hasn't drained the previous update yet
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config watch: %v", err)
		}
	}
}
