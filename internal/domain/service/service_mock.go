package service

import (
	"testing"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain/entity"
	"github.com/mfalcao/slack-punchcard-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockStore       *mocks.MockLedgerStore
	mockSlackClient *mocks.MockSlackClient
	mockFetcher     *mocks.MockOccupancyFetcher
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockStore:       mocks.NewMockLedgerStore(ctrl),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
		mockFetcher:     mocks.NewMockOccupancyFetcher(ctrl),
	}

	return
}

// newTestPunch builds a punch service over an empty ledger with persistence
// and log notices stubbed out.
func newTestPunch(t *testing.T, m allMocks, logChannelID string) *punchService {
	t.Helper()

	m.mockStore.EXPECT().Load().Return(entity.Ledger{}, nil).Times(1)
	punch, err := newPunch(m.mockStore, m.mockSlackClient, logChannelID)
	require.NoError(t, err)
	require.NotNil(t, punch)

	return punch
}
