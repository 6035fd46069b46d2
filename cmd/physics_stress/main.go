// Stress test for the brute-force stepper at growing body counts
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"boxstep/internal/physics"
)

var testCounts = []int{16, 64, 256, 1024, 2048, 4096}

func main() {
	steps := flag.Int("steps", 20, "steps to time per body count")
	float32Mode := flag.Bool("float32", false, "run the single precision engine")
	flag.Parse()

	if err := run(os.Stdout, testCounts, *steps, *float32Mode); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, counts []int, steps int, float32Mode bool) error {
	if steps <= 0 {
		return fmt.Errorf("-steps must be positive, got %d", steps)
	}

	for _, count := range counts {
		if float32Mode {
			runStress[float32](w, count, steps)
		} else {
			runStress[float64](w, count, steps)
		}
	}
	return nil
}

func runStress[T physics.Float](w io.Writer, count, steps int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := 20.0 + float64(count)/20.0

	type storage struct {
		box physics.CollisionBox[T]
		pos physics.Vector3[T]
		vel physics.Vector3[T]
	}
	bodies := make([]storage, count)
	for i := range bodies {
		size := 0.5 + rng.Float64()*1.5
		bodies[i] = storage{
			box: physics.NewCollisionBoxFromSize(physics.Vector3[T]{X: T(size), Y: T(size), Z: T(size)}),
			pos: physics.Vector3[T]{
				X: T(rng.Float64()*spawnSize - spawnSize/2),
				Y: T(rng.Float64() * spawnSize),
				Z: T(rng.Float64()*spawnSize - spawnSize/2),
			},
			vel: physics.Vector3[T]{X: T(rng.Float64()*2 - 1), Z: T(rng.Float64()*2 - 1)},
		}
	}

	e := physics.New[T](physics.WithCapacity(count))
	const dt = 1.0 / 60

	var total time.Duration
	contacts := 0
	for s := 0; s < steps; s++ {
		for i := range bodies {
			b := &bodies[i]
			// Every eighth body is static scenery.
			e.Add(&b.box, i%8 == 0, &b.pos, &b.vel, nil)
		}

		start := time.Now()
		e.Step(dt, 0.1, nil)
		total += time.Since(start)
		contacts += e.Stats().Contacts
	}

	moving := count - (count+7)/8
	avg := total / time.Duration(steps)
	fmt.Fprintf(w, "%5d bodies: %10v/step | %6.1f contacts/step | %d pairs tested/step\n",
		count, avg.Round(time.Microsecond), float64(contacts)/float64(steps), moving*(count-1))
}
