// Package runner implements the concurrent execution manager of spec §5:
// a bounded pool that drives interpreters to completion (or their step
// budget) concurrently, using golang.org/x/sync/semaphore to cap how many
// run at once.
package runner

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/pushlang/go-push/internal/interp"
)

// Job pairs an interpreter with the step budget it should be driven with
// (spec §5; 0 means unbounded).
type Job struct {
	Interp   *interp.Interpreter
	MaxSteps int
}

// Result reports how a submitted Job finished.
type Result struct {
	Job             Job
	StepsPerformed  int
	InterruptFlag   int
}

// Manager runs a bounded number of interpreters concurrently and collects
// their results (spec §5's "concurrent execution manager"). The zero value
// is not usable; use New.
type Manager struct {
	sem      *semaphore.Weighted
	wg       sync.WaitGroup
	mu       sync.Mutex
	results  []Result
	onResult func(Result)
}

// New returns a Manager that runs at most concurrency interpreters at
// once. concurrency <= 0 is treated as 1.
func New(concurrency int) *Manager {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Manager{sem: semaphore.NewWeighted(int64(concurrency))}
}

// OnResult installs a callback invoked (from whichever goroutine finishes
// a job) as each job completes, in addition to Result being retained for
// Wait's return value.
func (m *Manager) OnResult(f func(Result)) { m.onResult = f }

// Submit schedules job to run, blocking until a pool slot is free. It
// returns immediately once the job starts a goroutine; call Wait to block
// until all submitted jobs finish.
func (m *Manager) Submit(ctx context.Context, job Job) error {
	if err := m.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer m.sem.Release(1)

		steps := job.Interp.Run(job.MaxSteps)
		res := Result{Job: job, StepsPerformed: steps, InterruptFlag: job.Interp.InterruptFlag()}

		m.mu.Lock()
		m.results = append(m.results, res)
		m.mu.Unlock()

		if m.onResult != nil {
			m.onResult(res)
		}
	}()
	return nil
}

// Wait blocks until every submitted job has finished and returns all
// collected results, in completion order.
func (m *Manager) Wait() []Result {
	m.wg.Wait()
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Result, len(m.results))
	copy(out, m.results)
	return out
}

// InterruptAll sets flag on the interpreter of every job in jobs (spec §5's
// interrupt_all). The Manager keeps no record of submitted jobs, so
// interpreters not listed in jobs are not touched. interp's Run clears the
// flag when it starts, so a job whose Run has not begun yet does not see it.
func (m *Manager) InterruptAll(jobs []Job, flag int) {
	for _, j := range jobs {
		j.Interp.Interrupt(flag)
	}
}

// KillAll is InterruptAll with interp.KillFlag, requesting every
// interpreter in jobs stop and not be rescheduled (spec §5's kill_all).
func (m *Manager) KillAll(jobs []Job) {
	m.InterruptAll(jobs, interp.KillFlag)
}
