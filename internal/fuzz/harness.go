package fuzz

import (
	"math/rand/v2"
	"runtime"
)

// Property is one testable claim, checked against an independently-seeded
// Generator; a non-nil error is a counterexample.
type Property func(g *Generator) error

// Run splits trials across min(GOMAXPROCS, trials) workers, each with its
// own PCG stream derived from seed and the worker's index — the same
// split-and-derive shape as the teacher's
// inference.ReachabilityProbabilityMonteCarlo. It returns every
// counterexample encountered, continuing past failures so one bad seed
// doesn't hide the rest.
func Run(seed uint64, trials int, prop Property) []error {
	if trials <= 0 {
		return nil
	}

	numWorkers := min(runtime.GOMAXPROCS(0), trials)
	perWorker := trials / numWorkers
	remainder := trials % numWorkers

	type workerErrs struct {
		errs []error
	}
	results := make(chan workerErrs, numWorkers)

	for w := 0; w < numWorkers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}

		go func(workerID, n int) {
			rng := rand.New(rand.NewPCG(
				seed+uint64(workerID),
				(seed^0xda942042e4dd58b5)+uint64(workerID),
			))
			g := &Generator{Rand: rng}

			var errs []error
			for i := 0; i < n; i++ {
				if err := prop(g); err != nil {
					errs = append(errs, err)
				}
			}
			results <- workerErrs{errs: errs}
		}(w, n)
	}

	var all []error
	for w := 0; w < numWorkers; w++ {
		r := <-results
		all = append(all, r.errs...)
	}
	return all
}
