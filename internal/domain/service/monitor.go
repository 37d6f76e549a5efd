package service

import (
	"context"
	"log"
	"time"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain/contract"
	"github.com/mfalcao/slack-punchcard-bot/internal/domain/entity"
)

// emptyDebouncer requires two consecutive empty readings before the
// confirmed-empty gate opens, so a single restart blip never triggers
// reminders. Any non-empty reading resets it.
type emptyDebouncer struct {
	pendingEmpty   bool
	confirmedEmpty bool
	previousCount  int
	hasPrevious    bool
}

// observe advances the state machine with a fresh reading and reports
// whether the confirmed-empty gate is open this cycle.
func (d *emptyDebouncer) observe(occ entity.Occupancy) bool {
	if occ.Classification() != entity.ClassEmpty {
		d.pendingEmpty = false
		d.confirmedEmpty = false
	} else if !d.hasPrevious || d.previousCount != 0 {
		// First observation ever, or the previous reading was non-empty:
		// hold one cycle before confirming.
		d.pendingEmpty = true
		d.confirmedEmpty = false
	} else if d.pendingEmpty || d.confirmedEmpty {
		d.pendingEmpty = false
		d.confirmedEmpty = true
	}

	d.previousCount = occ.Current
	d.hasPrevious = true

	return d.confirmedEmpty
}

type monitorService struct {
	fetcher     contract.OccupancyFetcher
	slackClient contract.SlackClient
	reminder    *reminderService
	lfg         *lfgService
	debounce    emptyDebouncer
	interval    time.Duration
}

func newMonitor(fetcher contract.OccupancyFetcher, slackClient contract.SlackClient, reminder *reminderService, lfg *lfgService, interval time.Duration) *monitorService {
	return &monitorService{
		fetcher:     fetcher,
		slackClient: slackClient,
		reminder:    reminder,
		lfg:         lfg,
		interval:    interval,
	}
}

// Start launches the polling loop. It runs until ctx is cancelled and never
// exits on error: a failed cycle is logged and retried after the interval.
func (s *monitorService) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *monitorService) loop(ctx context.Context) {
	log.Println("Occupancy monitor starting...")

	s.runCycle(ctx)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Occupancy monitor stopping...")
			return
		case <-timer.C:
			s.runCycle(ctx)
			timer.Reset(s.interval)
		}
	}
}

// runCycle performs one sample. On fetch failure everything downstream is
// skipped: the presence label and the debounce state keep their previous
// values until the next successful cycle.
func (s *monitorService) runCycle(ctx context.Context) {
	occ, err := s.fetcher.FetchOccupancy(ctx)
	if err != nil {
		log.Printf("Occupancy poll failed, skipping cycle: %v", err)
		return
	}

	log.Printf("Occupancy %s (%s)", occ, occ.Classification())

	s.updatePresence(occ)
	s.lfg.noteOccupancy(occ.String())

	if s.debounce.observe(occ) {
		s.reminder.Sweep(ctx)
		s.lfg.RefreshPosts(ctx, occ.String())
	}
}

func (s *monitorService) updatePresence(occ entity.Occupancy) {
	var emoji string
	switch occ.Classification() {
	case entity.ClassEmpty:
		emoji = ":large_yellow_circle:"
	case entity.ClassFull:
		emoji = ":red_circle:"
	default:
		emoji = ":large_green_circle:"
	}

	if err := s.slackClient.SetUserCustomStatus("Online: "+occ.String(), emoji, 0); err != nil {
		log.Printf("Failed to update presence status: %v", err)
	}
}
