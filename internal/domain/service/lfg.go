package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain/contract"
	"github.com/mfalcao/slack-punchcard-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

// ErrLFGCooldown is returned when a post is rejected by the global cooldown.
type ErrLFGCooldown struct {
	Remaining time.Duration
}

func (e ErrLFGCooldown) Error() string {
	m := int(e.Remaining.Round(time.Minute).Minutes())
	if m < 1 {
		return "an LFG ping was sent moments ago, try again in under a minute"
	}
	return fmt.Sprintf("an LFG ping was already sent recently, try again in %d min", m)
}

// lfgService owns the outstanding LFG posts and the single global cooldown.
// The cooldown is a burst-1 rate limiter: one token per cooldown period, and
// a reservation's delay doubles as the remaining-wait report.
type lfgService struct {
	mu        sync.Mutex
	limiter   *rate.Limiter
	posts     []entity.LFGPost
	occupancy string

	slackClient  contract.SlackClient
	lfgChannelID string
	roleGroupID  string
}

func newLFG(slackClient contract.SlackClient, cooldown time.Duration, lfgChannelID, roleGroupID string) *lfgService {
	return &lfgService{
		limiter:      rate.NewLimiter(rate.Every(cooldown), 1),
		slackClient:  slackClient,
		lfgChannelID: lfgChannelID,
		roleGroupID:  roleGroupID,
	}
}

// noteOccupancy keeps the latest raw reading for new post templates. Called
// every successful sampler cycle.
func (s *lfgService) noteOccupancy(occupancy string) {
	s.mu.Lock()
	s.occupancy = occupancy
	s.mu.Unlock()
}

// PostLFG posts a looking-for-group ping, one per cooldown period across all
// requesters. A failed send returns the token so the cooldown stays unspent.
func (s *lfgService) PostLFG(ctx context.Context, slackUserID string) (string, error) {
	// The reservation is anchored to the reserve instant: a plain Cancel()
	// after the Slack round trip would no-op (the reservation's act time is
	// already in the past by then) and burn the whole cooldown on a failed
	// send. CancelAt(reservedAt) restores the token regardless of how long
	// the send took.
	reservedAt := time.Now()

	s.mu.Lock()
	reservation := s.limiter.ReserveN(reservedAt, 1)
	if delay := reservation.DelayFrom(reservedAt); delay > 0 {
		reservation.CancelAt(reservedAt)
		s.mu.Unlock()
		return "", ErrLFGCooldown{Remaining: delay}
	}
	occupancy := s.occupancy
	s.mu.Unlock()

	message := s.renderMessage(slackUserID, occupancy)

	_, messageID, err := s.slackClient.PostMessage(
		s.lfgChannelID,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		s.mu.Lock()
		reservation.CancelAt(reservedAt)
		s.mu.Unlock()
		return "", fmt.Errorf("failed to post LFG message: %w", err)
	}

	s.mu.Lock()
	s.posts = append(s.posts, entity.LFGPost{
		UserID:    slackUserID,
		ChannelID: s.lfgChannelID,
		MessageID: messageID,
	})
	s.mu.Unlock()

	return "LFG ping sent! It will keep showing live server occupancy.", nil
}

// RefreshPosts rewrites every outstanding post with the fresh occupancy
// string. A deleted message drops out of tracking; any other edit failure is
// logged and the post retried next cycle.
func (s *lfgService) RefreshPosts(ctx context.Context, occupancy string) {
	s.mu.Lock()
	posts := make([]entity.LFGPost, len(s.posts))
	copy(posts, s.posts)
	s.mu.Unlock()

	for _, post := range posts {
		_, _, _, err := s.slackClient.UpdateMessage(
			post.ChannelID,
			post.MessageID,
			slack.MsgOptionText(s.renderMessage(post.UserID, occupancy), false),
		)
		if err == nil {
			continue
		}

		if strings.Contains(err.Error(), "message_not_found") {
			s.dropPost(post)
			continue
		}
		log.Printf("Failed to refresh LFG post %s: %v", post.MessageID, err)
	}
}

func (s *lfgService) dropPost(post entity.LFGPost) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.MessageID == post.MessageID && p.ChannelID == post.ChannelID {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return
		}
	}
}

func (s *lfgService) renderMessage(slackUserID, occupancy string) string {
	if occupancy == "" {
		occupancy = "?/?"
	}
	if s.roleGroupID == "" {
		return fmt.Sprintf("<@%s> is looking for group! Server: %s", slackUserID, occupancy)
	}
	return fmt.Sprintf("<!subteam^%s> <@%s> is looking for group! Server: %s", s.roleGroupID, slackUserID, occupancy)
}
