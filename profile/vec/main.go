// Profiling:
// go build ./profile/vec
// go tool pprof -http=":8000" -nodefraction=0.001 ./vec cpu.pprof

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
	elements := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, elements)
	p.Stop()
}

func run(rounds, iters, numElements int) {
	for r := 0; r < rounds; r++ {
		v := necs.NewVec(unsafe.Sizeof(comp{}), 0)
		for it := 0; it < iters; it++ {
			for i := 0; i < numElements; i++ {
				c := (*comp)(v.Append())
				c.V = int64(i)
				c.W = 1
			}
			for v.Len() > 0 {
				v.Remove(0)
			}
		}
	}
}
