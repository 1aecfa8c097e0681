// Package announcer delivers the daily reading message: on each firing it
// re-reads the reading plan, picks today's record by day of year, formats it
// and posts it to the configured channel.
package announcer

import (
	"fmt"
	"log"
	"time"

	"github.com/bibleinayear/biaybot/internal/config"
	"github.com/bibleinayear/biaybot/internal/domain/contract"
	"github.com/bibleinayear/biaybot/internal/plan"
)

type Announcer struct {
	cfg    *config.Config
	sender contract.ChannelSender
	loc    *time.Location
}

func New(cfg *config.Config, sender contract.ChannelSender, loc *time.Location) *Announcer {
	return &Announcer{
		cfg:    cfg,
		sender: sender,
		loc:    loc,
	}
}

// Fire is the scheduled callback. Every failure is logged and swallowed so a
// bad firing never takes down the scheduler; the next day gets a fresh try.
func (a *Announcer) Fire() {
	if err := a.Announce(time.Now().In(a.loc)); err != nil {
		log.Printf("Error sending daily reading: %v", err)
	}
}

// Announce performs one firing for the given moment. The plan file is read
// fresh each time, so edits to it take effect without a restart. A day with
// no matching record is logged and skipped, not an error.
func (a *Announcer) Announce(now time.Time) error {
	records, err := plan.Load(a.cfg.JSONFilePath)
	if err != nil {
		return err
	}

	dayOfYear := now.YearDay()

	for _, record := range records {
		if record.Day != dayOfYear {
			continue
		}

		// First match wins; day numbers are not deduplicated upstream.
		message, err := FormatDailyMessage(record, now)
		if err != nil {
			return err
		}

		ok, err := a.sender.ResolveChannel(a.cfg.ChannelID)
		if err != nil {
			return fmt.Errorf("failed to resolve channel %d: %w", a.cfg.ChannelID, err)
		}
		if !ok {
			return fmt.Errorf("could not find channel with ID %d", a.cfg.ChannelID)
		}

		if err := a.sender.SendMessage(a.cfg.ChannelID, message); err != nil {
			return err
		}

		log.Printf("Successfully sent reading for day %d", dayOfYear)
		return nil
	}

	log.Printf("No reading found for day %d", dayOfYear)
	return nil
}
