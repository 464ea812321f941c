// Profiling:
// go build ./profile/sparse
// go tool pprof -http=":8000" -nodefraction=0.001 ./sparse mem.pprof

package main

import (
	"unsafe"

	"github.com/edwinsyarief/necs"
	"github.com/pkg/profile"
)

type comp struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		s := necs.NewSparseSet(unsafe.Sizeof(comp{}), uint32(numEntities))
		for it := 0; it < iters; it++ {
			for e := 0; e < numEntities; e++ {
				c := (*comp)(s.Add(necs.Entity(e)))
				c.V = int64(e)
				c.W = 1
			}
			var sum int64
			for i := uint32(0); i < s.Count(); i++ {
				c := (*comp)(s.ComponentAt(i))
				sum += c.V + c.W
			}
			_ = sum
			for e := 0; e < numEntities; e++ {
				s.Remove(necs.Entity(e))
			}
		}
	}
}
