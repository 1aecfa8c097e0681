// Package scheduler owns the bot's single recurring trigger: once per
// calendar day at local midnight in the configured timezone.
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron *cron.Cron
	loc  *time.Location
}

// New builds a scheduler whose cron expressions are evaluated in loc, so the
// daily job fires at midnight local to the configured zone rather than the
// server's.
func New(loc *time.Location) *Scheduler {
	// Recover keeps a panicking job from taking the trigger down with it.
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cron.DefaultLogger)),
		),
		loc: loc,
	}
}

// AddDaily registers fn to run every day at 00:00:00. Only one job is ever
// registered; firings are a day apart so they cannot overlap.
func (s *Scheduler) AddDaily(fn func()) error {
	_, err := s.cron.AddFunc("0 0 * * *", fn)
	return err
}

// Run starts the scheduler and blocks until Stop is called. This is the
// process's keep-alive: after startup its only job is to stay alive and let
// the trigger fire.
func (s *Scheduler) Run() {
	log.Printf("Scheduler running, daily trigger at midnight in %s", s.loc)
	s.cron.Run()
}

func (s *Scheduler) Stop() {
	log.Println("Scheduler stopping...")
	s.cron.Stop()
}

// NextFiring reports when the daily trigger would next fire after t.
func (s *Scheduler) NextFiring(t time.Time) time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Schedule.Next(t.In(s.loc))
}
