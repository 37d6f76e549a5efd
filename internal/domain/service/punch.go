package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain/contract"
	"github.com/mfalcao/slack-punchcard-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

type punchService struct {
	mu     sync.Mutex
	ledger entity.Ledger

	store        contract.LedgerStore
	slackClient  contract.SlackClient
	logChannelID string
	now          func() time.Time
}

func newPunch(store contract.LedgerStore, slackClient contract.SlackClient, logChannelID string) (*punchService, error) {
	ledger, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return &punchService{
		ledger:       ledger,
		store:        store,
		slackClient:  slackClient,
		logChannelID: logChannelID,
		now:          time.Now,
	}, nil
}

// TogglePunch flips the user's session state. The read-modify-write on the
// ledger happens under the mutex; persistence and the log-channel notice
// happen after, so a slow disk or Slack call never holds up another toggle.
func (s *punchService) TogglePunch(ctx context.Context, slackUserID string) (entity.PunchResult, error) {
	now := s.now()

	s.mu.Lock()
	entry, ok := s.ledger[slackUserID]
	if !ok {
		entry = &entity.PunchcardEntry{}
		s.ledger[slackUserID] = entry
	}

	var result entity.PunchResult
	if entry.PunchedIn {
		elapsed := now.Sub(entry.LastPunchAt)
		if elapsed < 0 {
			elapsed = 0
		}
		entry.TotalSeconds += elapsed.Seconds()
		entry.PunchedIn = false
		result = entity.PunchResult{PunchedIn: false, Duration: elapsed}
	} else {
		entry.PunchedIn = true
		entry.LastPunchAt = now
		result = entity.PunchResult{PunchedIn: true}
	}
	snapshot := s.ledger.Clone()
	s.mu.Unlock()

	// Persistence failure is logged only: the in-memory ledger stays
	// authoritative for the running process.
	if err := s.store.Save(snapshot); err != nil {
		log.Printf("Failed to persist ledger after toggle for %s: %v", slackUserID, err)
	}

	s.postLogNotice(slackUserID, result)

	return result, nil
}

func (s *punchService) postLogNotice(slackUserID string, result entity.PunchResult) {
	if s.logChannelID == "" {
		return
	}

	var message string
	if result.PunchedIn {
		message = fmt.Sprintf("🟢 <@%s> punched in", slackUserID)
	} else {
		message = fmt.Sprintf("🔴 <@%s> punched out after %s", slackUserID, FormatDuration(result.Duration))
	}

	_, _, err := s.slackClient.PostMessage(
		s.logChannelID,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		log.Printf("Failed to post punch notice for %s: %v", slackUserID, err)
	}
}

// StatusOf returns a copy of the user's entry, with an open session's
// elapsed time not yet folded in.
func (s *punchService) StatusOf(slackUserID string) (entity.PunchcardEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.ledger[slackUserID]
	if !ok {
		return entity.PunchcardEntry{}, false
	}
	return *entry, true
}

// PunchedInUsers returns the IDs of everyone with an open session.
func (s *punchService) PunchedInUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []string
	for id, entry := range s.ledger {
		if entry.PunchedIn {
			users = append(users, id)
		}
	}
	return users
}

// WeeklyResetAndReport closes any open sessions into their totals, formats
// one line per user, clears the ledger and persists the empty snapshot.
func (s *punchService) WeeklyResetAndReport(ctx context.Context) (string, error) {
	now := s.now()

	s.mu.Lock()
	for _, entry := range s.ledger {
		if entry.PunchedIn {
			elapsed := now.Sub(entry.LastPunchAt)
			if elapsed < 0 {
				elapsed = 0
			}
			entry.TotalSeconds += elapsed.Seconds()
			entry.PunchedIn = false
		}
	}
	snapshot := s.ledger
	s.ledger = entity.Ledger{}
	s.mu.Unlock()

	if err := s.store.Save(entity.Ledger{}); err != nil {
		log.Printf("Failed to persist ledger after weekly reset: %v", err)
	}

	if len(snapshot) == 0 {
		return "No tracked sessions this week.", nil
	}

	type reportLine struct {
		label string
		hours float64
	}

	var lines []reportLine
	for id, entry := range snapshot {
		label := id
		if userInfo, err := s.slackClient.GetUserInfo(id); err != nil {
			log.Printf("Failed to resolve user %s for weekly report: %v", id, err)
		} else {
			displayName := userInfo.Profile.RealName
			if displayName == "" {
				displayName = userInfo.Profile.DisplayName
			}
			if displayName == "" {
				displayName = userInfo.Name
			}
			label = fmt.Sprintf("%s (%s)", displayName, userInfo.Name)
		}
		lines = append(lines, reportLine{label: label, hours: entry.TotalSeconds / 3600})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].hours > lines[j].hours
	})

	var b strings.Builder
	b.WriteString("📋 *Weekly hours report*\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "• %s: %.2f h\n", line.label, line.hours)
	}

	return b.String(), nil
}

// FormatDuration renders a session length the way it appears in punch-out
// acknowledgments, e.g. "2h 13m" or "45s".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, sec)
	default:
		return fmt.Sprintf("%ds", sec)
	}
}
