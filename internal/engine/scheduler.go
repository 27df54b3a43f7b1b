package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a price-check pass at startup and then on a fixed interval.
type Scheduler struct {
	cron    *cron.Cron
	engine  *Engine
	log     *slog.Logger
	entryID cron.EntryID

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a new Scheduler that runs engine passes every
// interval.
func NewScheduler(
	eng *Engine,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("invalid check interval %s", interval)
	}

	c := cron.New()
	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}

	id, err := c.AddFunc("@every "+interval.String(), s.runPass)
	if err != nil {
		cancel()
		return nil, err
	}
	s.entryID = id

	return s, nil
}

// Start begins the schedule and kicks off the first pass immediately in
// the background.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runPass()
	}()
}

// Stop halts the schedule and cancels any running pass, which stops before
// its next alert. The returned context is done once in-flight passes have
// returned.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	s.cancel()
	cronDone := s.cron.Stop()

	ctx, done := context.WithCancel(context.Background())
	go func() {
		<-cronDone.Done()
		s.wg.Wait()
		done()
	}()
	return ctx
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// Next returns when the next scheduled pass is due.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entryID).Next
}

func (s *Scheduler) runPass() {
	if s.ctx.Err() != nil {
		return
	}

	s.log.Info("scheduled pass starting")
	if _, err := s.engine.RunPass(s.ctx); err != nil {
		if errors.Is(err, ErrPassInProgress) {
			s.log.Warn("previous pass still running, skipping tick")
			return
		}
		s.log.Error("scheduled pass failed", "error", err)
	}
}
