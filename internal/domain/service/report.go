package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain"
	"github.com/mfalcao/slack-punchcard-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// reportScheduler fires the weekly reset once per week, on a minute ticker
// compared against the configured weekday and HH:MM.
type reportScheduler struct {
	punch        contract.PunchService
	slackClient  contract.SlackClient
	logChannelID string

	weekday int // ISO 8601, 1 = Monday
	hour    int
	minute  int

	now       func() time.Time
	lastFired time.Time
}

func newReportScheduler(punch contract.PunchService, slackClient contract.SlackClient, logChannelID string, weekday int, reportTime string) (*reportScheduler, error) {
	hour, minute, err := parseReportTime(reportTime)
	if err != nil {
		return nil, err
	}
	if _, ok := domain.WeekdayNames[weekday]; !ok {
		return nil, fmt.Errorf("invalid report weekday: %d", weekday)
	}

	return &reportScheduler{
		punch:        punch,
		slackClient:  slackClient,
		logChannelID: logChannelID,
		weekday:      weekday,
		hour:         hour,
		minute:       minute,
		now:          time.Now,
	}, nil
}

func parseReportTime(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid report time format %q, want HH:MM", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in report time %q", value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in report time %q", value)
	}

	return hour, minute, nil
}

func (s *reportScheduler) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *reportScheduler) loop(ctx context.Context) {
	log.Printf("Weekly report scheduler starting (%s %02d:%02d)...",
		domain.WeekdayNames[s.weekday], s.hour, s.minute)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Weekly report scheduler stopping...")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick fires the report when the current minute matches the target. The
// lastFired guard keeps a ticker drifting inside the same wall minute from
// firing twice.
func (s *reportScheduler) tick(ctx context.Context) {
	now := s.now()
	if !s.matches(now) {
		return
	}
	if !s.lastFired.IsZero() && now.Sub(s.lastFired) < time.Minute {
		return
	}
	s.lastFired = now

	report, err := s.punch.WeeklyResetAndReport(ctx)
	if err != nil {
		log.Printf("Weekly reset failed: %v", err)
		return
	}

	if s.logChannelID == "" {
		return
	}

	_, _, err = s.slackClient.PostMessage(
		s.logChannelID,
		slack.MsgOptionText(report, false),
	)
	if err != nil {
		log.Printf("Failed to post weekly report: %v", err)
	}
}

func (s *reportScheduler) matches(now time.Time) bool {
	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday = 0 in Go, but we use 7 for ISO 8601
		weekday = 7
	}

	return weekday == s.weekday && now.Hour() == s.hour && now.Minute() == s.minute
}
