package ecs

import (
	"github.com/phanxgames/parallax"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// OutputEvent is published each time a named effect produces a value.
type OutputEvent struct {
	Effect string
	Value  float64
}

// OutputEventType is the Donburi event type for effect outputs.
var OutputEventType = events.NewEventType[OutputEvent]()

// BindDonburi publishes the output of every named effect under root to
// OutputEventType. Unnamed effects are skipped. Outputs are queued like any
// Donburi event and delivered by ProcessEvents. Disposing the result stops
// publishing without touching the effects' OnChange sinks.
func BindDonburi(world donburi.World, root *parallax.Effect[float64]) parallax.Disposable {
	bag := &parallax.DisposeBag{}
	root.Walk(func(e *parallax.Effect[float64]) bool {
		if e.Name == "" {
			return true
		}
		name := e.Name
		bag.Add(e.Changes().Subscribe(func(v float64) {
			OutputEventType.Publish(world, OutputEvent{Effect: name, Value: v})
		}))
		return true
	})
	return bag
}

// ProgressData drives an effect tree from an entity. Set Value and the next
// SeedSystem run seeds Effect with it.
type ProgressData struct {
	Effect *parallax.Effect[float64]
	Value  float64

	seeded bool
	last   float64
}

// Progress is the component type for ProgressData.
var Progress = donburi.NewComponentType[ProgressData]()

var progressQuery = donburi.NewQuery(filter.Contains(Progress))

// SeedSystem seeds the effect of every Progress entity whose Value changed
// since the previous run. Entities with a nil Effect are ignored.
func SeedSystem(world donburi.World) {
	progressQuery.Each(world, func(entry *donburi.Entry) {
		p := Progress.Get(entry)
		if p.Effect == nil || (p.seeded && p.last == p.Value) {
			return
		}
		p.Effect.Seed(p.Value)
		p.seeded = true
		p.last = p.Value
	})
}
