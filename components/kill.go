package components

import (
	"fmt"

	"github.com/plus3/gobs/ecs"
)

// DefaultKillThreshold is the demo's entity lifetime in seconds.
const DefaultKillThreshold = 3.0

// Kill destroys its owner once the sibling Counter has accumulated Threshold
// seconds. The Counter must be attached before Kill: Init resolves it once,
// caches the pointer, and fails with ErrMissingComponent if it is absent.
type Kill struct {
	Threshold float64

	owner   *ecs.Entity
	counter *Counter
}

func NewKill(threshold float64) *Kill {
	return &Kill{Threshold: threshold}
}

func (k *Kill) Init(owner *ecs.Entity) error {
	counter, err := ecs.GetComponent[*Counter](owner)
	if err != nil {
		return fmt.Errorf("kill needs a counter sibling: %w", err)
	}
	k.owner = owner
	k.counter = counter
	return nil
}

func (k *Kill) Update(float64) {
	if k.counter.Elapsed >= k.Threshold {
		k.owner.Destroy()
	}
}

func (k *Kill) Render(ecs.Surface) {}
