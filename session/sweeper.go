package session

import (
	"context"
	"sync"
	"time"
)

// SweepReport receives the outcome of every sweep run.
type SweepReport func(removed int, err error)

// Sweeper runs [Store.Sweep] on a fixed interval until closed.
type Sweeper struct {
	store    Store
	interval time.Duration
	report   SweepReport

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// StartSweeper launches the background sweep loop. A non-positive interval
// falls back to [DefaultSweepInterval].
func StartSweeper(store Store, interval time.Duration, report SweepReport) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	s := &Sweeper{
		store:    store,
		interval: interval,
		report:   report,
		done:     make(chan struct{}),
	}

	s.wg.Add(1)
	go s.run()

	return s
}

func (s *Sweeper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := s.store.Sweep(context.Background())
			if s.report != nil {
				s.report(removed, err)
			}
		case <-s.done:
			return
		}
	}
}

// Close stops the loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
	})
}
