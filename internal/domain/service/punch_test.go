package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_punchService_TogglePunch_Alternates(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockStore.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()

	punch := newTestPunch(t, m, "")

	base := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
	current := base
	punch.now = func() time.Time { return current }

	ctx := context.Background()

	// First toggle punches in.
	result, err := punch.TogglePunch(ctx, "U123")
	require.NoError(t, err)
	assert.True(t, result.PunchedIn)
	assert.Zero(t, result.Duration)

	// Second toggle punches out, accumulating the elapsed time.
	current = base.Add(90 * time.Minute)
	result, err = punch.TogglePunch(ctx, "U123")
	require.NoError(t, err)
	assert.False(t, result.PunchedIn)
	assert.Equal(t, 90*time.Minute, result.Duration)

	entry, ok := punch.StatusOf("U123")
	require.True(t, ok)
	assert.False(t, entry.PunchedIn)
	assert.InDelta(t, 90*60, entry.TotalSeconds, 0.001)

	// Third toggle punches back in and totals keep growing.
	current = current.Add(time.Hour)
	result, err = punch.TogglePunch(ctx, "U123")
	require.NoError(t, err)
	assert.True(t, result.PunchedIn)

	current = current.Add(30 * time.Minute)
	result, err = punch.TogglePunch(ctx, "U123")
	require.NoError(t, err)
	assert.False(t, result.PunchedIn)
	assert.Equal(t, 30*time.Minute, result.Duration)

	entry, ok = punch.StatusOf("U123")
	require.True(t, ok)
	assert.InDelta(t, 120*60, entry.TotalSeconds, 0.001)
}

func Test_punchService_TogglePunch_ClampsNegativeElapsed(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockStore.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()

	punch := newTestPunch(t, m, "")

	base := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
	current := base
	punch.now = func() time.Time { return current }

	ctx := context.Background()

	_, err := punch.TogglePunch(ctx, "U123")
	require.NoError(t, err)

	// Wall clock went backwards between punches.
	current = base.Add(-time.Hour)
	result, err := punch.TogglePunch(ctx, "U123")
	require.NoError(t, err)
	assert.Zero(t, result.Duration)

	entry, ok := punch.StatusOf("U123")
	require.True(t, ok)
	assert.Zero(t, entry.TotalSeconds)
}

func Test_punchService_TogglePunch_PersistFailureKeepsMemoryState(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockStore.EXPECT().Save(gomock.Any()).Return(errors.New("disk full")).Times(1)

	punch := newTestPunch(t, m, "")

	result, err := punch.TogglePunch(context.Background(), "U123")
	require.NoError(t, err)
	assert.True(t, result.PunchedIn)

	entry, ok := punch.StatusOf("U123")
	require.True(t, ok)
	assert.True(t, entry.PunchedIn)
}

func Test_punchService_TogglePunch_PostsLogNotice(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockStore.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()
	m.mockSlackClient.EXPECT().
		PostMessage("C-LOG", gomock.Any()).
		Return("C-LOG", "111.222", nil).Times(1)

	punch := newTestPunch(t, m, "C-LOG")

	_, err := punch.TogglePunch(context.Background(), "U123")
	require.NoError(t, err)
}

func Test_punchService_WeeklyResetAndReport(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockStore.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()

	punch := newTestPunch(t, m, "")

	base := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
	current := base
	punch.now = func() time.Time { return current }

	ctx := context.Background()

	// U1 completes a two hour session; U2 stays punched in for one hour and
	// must have the open session folded into the report.
	_, err := punch.TogglePunch(ctx, "U1")
	require.NoError(t, err)
	current = base.Add(2 * time.Hour)
	_, err = punch.TogglePunch(ctx, "U1")
	require.NoError(t, err)

	_, err = punch.TogglePunch(ctx, "U2")
	require.NoError(t, err)
	current = base.Add(3 * time.Hour)

	m.mockSlackClient.EXPECT().
		GetUserInfo("U1").
		Return(&slack.User{Name: "alice", Profile: slack.UserProfile{RealName: "Alice A"}}, nil).Times(1)
	m.mockSlackClient.EXPECT().
		GetUserInfo("U2").
		Return(nil, errors.New("user_not_found")).Times(1)

	report, err := punch.WeeklyResetAndReport(ctx)
	require.NoError(t, err)

	assert.Contains(t, report, "Alice A (alice): 2.00 h")
	// Unresolvable users are reported by raw ID.
	assert.Contains(t, report, "U2: 1.00 h")

	// Ledger must be empty afterwards.
	assert.Empty(t, punch.PunchedInUsers())
	_, ok := punch.StatusOf("U1")
	assert.False(t, ok)
	_, ok = punch.StatusOf("U2")
	assert.False(t, ok)
}

func Test_punchService_WeeklyResetAndReport_EmptyLedger(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockStore.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

	punch := newTestPunch(t, m, "")

	report, err := punch.WeeklyResetAndReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "No tracked sessions this week.", report)
}

func Test_punchService_PunchedInUsers(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockStore.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()

	punch := newTestPunch(t, m, "")
	ctx := context.Background()

	_, err := punch.TogglePunch(ctx, "U1")
	require.NoError(t, err)
	_, err = punch.TogglePunch(ctx, "U2")
	require.NoError(t, err)
	_, err = punch.TogglePunch(ctx, "U2") // U2 punches back out
	require.NoError(t, err)

	users := punch.PunchedInUsers()
	assert.ElementsMatch(t, []string{"U1"}, users)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "seconds only", d: 45 * time.Second, want: "45s"},
		{name: "minutes and seconds", d: 5*time.Minute + 3*time.Second, want: "5m 3s"},
		{name: "hours and minutes", d: 2*time.Hour + 13*time.Minute, want: "2h 13m"},
		{name: "zero", d: 0, want: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

func Test_punchService_LoadsExistingLedger(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	existing := entity.Ledger{
		"U9": {PunchedIn: true, LastPunchAt: time.Now(), TotalSeconds: 120},
	}
	m.mockStore.EXPECT().Load().Return(existing, nil).Times(1)

	punch, err := newPunch(m.mockStore, m.mockSlackClient, "")
	require.NoError(t, err)

	entry, ok := punch.StatusOf("U9")
	require.True(t, ok)
	assert.True(t, entry.PunchedIn)
	assert.InDelta(t, 120, entry.TotalSeconds, 0.001)
}
