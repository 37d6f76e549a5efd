package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain/contract"
	"github.com/patrickmn/go-cache"
	"github.com/slack-go/slack"
)

// reminderService nudges punched-in members when the server is confirmed
// empty. The cooldown table is a TTL cache: an entry still present means the
// user was reminded within the window. It is deliberately not persisted, so
// a restart resets all cooldowns.
type reminderService struct {
	punch        contract.PunchService
	slackClient  contract.SlackClient
	cooldowns    *cache.Cache
	logChannelID string
}

func newReminder(punch contract.PunchService, slackClient contract.SlackClient, cooldown time.Duration, logChannelID string) *reminderService {
	return &reminderService{
		punch:        punch,
		slackClient:  slackClient,
		cooldowns:    cache.New(cooldown, 2*cooldown),
		logChannelID: logChannelID,
	}
}

// Sweep reminds every punched-in user not currently cooling down. One user's
// failure never aborts the rest of the sweep.
func (s *reminderService) Sweep(ctx context.Context) {
	for _, userID := range s.punch.PunchedInUsers() {
		if _, onCooldown := s.cooldowns.Get(userID); onCooldown {
			continue
		}
		s.remind(userID)
	}
}

func (s *reminderService) remind(userID string) {
	// A user that no longer resolves is skipped without touching the
	// cooldown table, so the next sweep retries the lookup.
	userInfo, err := s.slackClient.GetUserInfo(userID)
	if err != nil {
		log.Printf("Failed to resolve user %s for reminder: %v", userID, err)
		return
	}

	log.Printf("Server empty, reminding %s (%s) to punch out", userInfo.Name, userID)

	message := "👋 The server is empty but you are still punched in. Forgot to `/punch` out?"

	if err := s.sendDM(userID, message); err != nil {
		log.Printf("DM to %s refused (%v), falling back to channel ping", userID, err)
		s.channelFallback(userID, message)
	}

	// Recorded after attempting delivery, successful or not: at most one
	// attempt per window, not exactly-once.
	s.cooldowns.SetDefault(userID, time.Now())
}

func (s *reminderService) sendDM(userID, message string) error {
	channel, _, _, err := s.slackClient.OpenConversation(&slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return fmt.Errorf("failed to open conversation: %w", err)
	}

	_, _, err = s.slackClient.PostMessage(channel.ID, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}

	return nil
}

// channelFallback posts a mention and immediately retracts it, which still
// triggers a notification for the user, then leaves a plain reminder line in
// the log channel. Everything here is best-effort.
func (s *reminderService) channelFallback(userID, message string) {
	if s.logChannelID == "" {
		return
	}

	_, timestamp, err := s.slackClient.PostMessage(
		s.logChannelID,
		slack.MsgOptionText(fmt.Sprintf("<@%s>", userID), false),
	)
	if err != nil {
		log.Printf("Failed to post fallback ping for %s: %v", userID, err)
	} else if _, _, err := s.slackClient.DeleteMessage(s.logChannelID, timestamp); err != nil {
		log.Printf("Failed to retract fallback ping for %s: %v", userID, err)
	}

	_, _, err = s.slackClient.PostMessage(
		s.logChannelID,
		slack.MsgOptionText(fmt.Sprintf("<@%s> %s", userID, message), false),
	)
	if err != nil {
		log.Printf("Failed to post fallback reminder for %s: %v", userID, err)
	}
}
