// Package worker runs best-effort background jobs, currently the welcome
// mail sent after registration.
package worker

import "sync"

type Job func()

type Pool struct {
	wg   sync.WaitGroup
	jobs chan Job
}

func NewPool(n int) *Pool {
	p := &Pool{jobs: make(chan Job, 256)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

func (p *Pool) Submit(j Job) { p.jobs <- j }

// Stop drains the queue and waits for in-flight jobs.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
