// Profiling:
// go build ./cmd/warehouseprofile
// go tool pprof -http=":8000" -nodefraction=0.001 ./warehouseprofile mem.pprof

package main

import (
	"flag"

	"github.com/coldforge/warehouse"
	"github.com/pkg/profile"
)

type position struct{ X, Y float64 }
type velocity struct{ X, Y float64 }

func main() {
	rounds := flag.Int("rounds", 50, "profiling rounds")
	iters := flag.Int("iters", 10000, "ticks per round")
	entities := flag.Int("entities", 1000, "entities created per tick")
	mode := flag.String("mode", "alloc", "alloc, cpu, or mem")
	flag.Parse()

	var p interface{ Stop() }
	switch *mode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	}
	run(*rounds, *iters, *entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := warehouse.Factory.NewWorld()
		scheduler := warehouse.Factory.NewScheduler(w)
		warehouse.RegisterSystem2[position, velocity](scheduler, warehouse.StageUpdate,
			func(ctx warehouse.Context, e warehouse.Entity, pos *position, vel *velocity) {
				pos.X += vel.X
				pos.Y += vel.Y
			})

		for i := 0; i < iters; i++ {
			fresh := w.CreateEntities(numEntities)
			for _, e := range fresh {
				warehouse.Add(w, e, position{})
				warehouse.Add(w, e, velocity{X: 1, Y: 1})
			}

			scheduler.Update()

			for _, e := range fresh {
				w.DestroyEntity(e)
			}
		}
	}
}
