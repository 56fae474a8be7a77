// Package ecs provides ECS adapters for parallax effect trees.
//
// [BindDonburi] bridges the outputs of every named effect in a tree into a
// [Donburi] world as typed events. Subscribe to [OutputEventType] in your ECS
// systems to receive them. [SeedSystem] does the opposite: it seeds every
// entity carrying a [Progress] component whose value changed.
//
// Usage:
//
//	sub := ecs.BindDonburi(world, root)
//	defer sub.Dispose()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
