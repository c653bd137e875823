// Package parallel runs independent tasks on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc queues a task.
	WorkerFunc func(func())
	// WaitFunc blocks until every queued task has finished. If done is
	// true the pool is shut down afterwards.
	WaitFunc func(done bool)
	// CancelFunc stops the pool from accepting tasks.
	CancelFunc func()
)

type Pool struct {
	workers sync.WaitGroup
	tasks   sync.WaitGroup
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

// Start returns a pool of numWorkers goroutines. If numWorkers is less than
// one, GOMAXPROCS workers are used. A pool of one runs every task inline.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.workers.Go(func() {
				for f := range workChan {
					f()
					pool.tasks.Done()
				}
			})
		}

		pool.Do = func(f func()) {
			pool.tasks.Add(1)
			workChan <- f
		}

		pool.Wait = func(done bool) {
			pool.tasks.Wait()
			if done {
				pool.Cancel()
				pool.workers.Wait()
			}
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}
