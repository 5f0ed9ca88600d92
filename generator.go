package brushgen

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/esimov/brushgen/utils"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Generator options
type Generator struct {
	// Size overrides the default canvas size of every brush when positive.
	Size int
	// Seed is the base seed. Brush i of the catalog uses Seed+i; a brush built
	// outside of the catalog at position p of the generated list uses
	// Seed+len(Catalog())+p.
	Seed    int64
	Workers int
}

// Result holds the generated stamp of a brush or the error which prevented its generation.
type Result struct {
	Brush   Brush
	Image   *image.NRGBA
	Err     error
	Elapsed time.Duration
}

// job is a brush waiting to be generated, along with its position in the results.
type job struct {
	pos   int
	brush Brush
}

// outcome is the result of a job.
type outcome struct {
	pos int
	res Result
}

// Generate synthesizes the brushes concurrently and returns the results in the
// order of the provided brushes. Every brush owns a random source derived from
// the generator seed, so a seeded run is reproducible regardless of the
// scheduling of the workers.
func (g *Generator) Generate(brushes []Brush) []Result {
	return g.run(brushes, false)
}

// workers returns the number of workers, limited to maxWorkers.
func (g *Generator) workers() int {
	workers := g.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return utils.Max(1, utils.Min(workers, maxWorkers))
}

// run feeds the brushes to the workers. With failFast set no more brushes are
// queued once a brush fails; the results of the brushes never queued are left empty.
func (g *Generator) run(brushes []Brush, failFast bool) []Result {
	workers := g.workers()

	var wg sync.WaitGroup
	jobs := make(chan job)
	ch := make(chan outcome)
	done := make(chan struct{})

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				ch <- outcome{pos: j.pos, res: g.generate(j.pos, j.brush)}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, b := range brushes {
			select {
			case <-done:
				return
			default:
			}
			select {
			case jobs <- job{pos: i, brush: b}:
			case <-done:
				return
			}
		}
	}()

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var stopped bool
	results := make([]Result, len(brushes))
	for r := range ch {
		results[r.pos] = r.res
		if failFast && r.res.Err != nil && !stopped {
			close(done)
			stopped = true
		}
	}
	return results
}

// seed returns the seed of the brush at position pos of the generated list.
func (g *Generator) seed(pos int, b Brush) int64 {
	if b.cataloged {
		return g.Seed + int64(b.index)
	}
	return g.Seed + int64(len(Catalog())) + int64(pos)
}

// generate runs a single brush recipe with its own random source.
func (g *Generator) generate(pos int, b Brush) Result {
	size := b.Size
	if g.Size > 0 {
		size = g.Size
	}
	rng := rand.New(rand.NewSource(g.seed(pos, b)))

	now := time.Now()
	img, err := b.Generate(size, rng)

	return Result{
		Brush:   b,
		Image:   img,
		Err:     err,
		Elapsed: time.Since(now),
	}
}
