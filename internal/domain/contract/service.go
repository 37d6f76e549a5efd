package contract

import (
	"context"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain/entity"
)

type PunchService interface {
	TogglePunch(ctx context.Context, slackUserID string) (entity.PunchResult, error)
	StatusOf(slackUserID string) (entity.PunchcardEntry, bool)
	PunchedInUsers() []string
	WeeklyResetAndReport(ctx context.Context) (string, error)
}

type LFGService interface {
	PostLFG(ctx context.Context, slackUserID string) (string, error)
	RefreshPosts(ctx context.Context, occupancy string)
}

// OccupancyFetcher performs one status query against the game server
type OccupancyFetcher interface {
	FetchOccupancy(ctx context.Context) (entity.Occupancy, error)
}
