package service

import (
	"context"

	"github.com/mfalcao/slack-punchcard-bot/internal/config"
	"github.com/mfalcao/slack-punchcard-bot/internal/domain/contract"
)

type Instance struct {
	Punch    *punchService
	Reminder *reminderService
	LFG      *lfgService
	Monitor  *monitorService
	Report   *reportScheduler
}

func NewInstance(cfg *config.Config, store contract.LedgerStore, slackClient contract.SlackClient, fetcher contract.OccupancyFetcher) (*Instance, error) {
	punch, err := newPunch(store, slackClient, cfg.LogChannelID)
	if err != nil {
		return nil, err
	}

	reminder := newReminder(punch, slackClient, cfg.ReminderCooldown, cfg.LogChannelID)
	lfg := newLFG(slackClient, cfg.LFGCooldown, cfg.LFGChannelID, cfg.LFGRoleGroup)
	monitor := newMonitor(fetcher, slackClient, reminder, lfg, cfg.PollInterval)

	report, err := newReportScheduler(punch, slackClient, cfg.LogChannelID, cfg.ReportWeekday, cfg.ReportTime)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Punch:    punch,
		Reminder: reminder,
		LFG:      lfg,
		Monitor:  monitor,
		Report:   report,
	}, nil
}

// Start launches the background loops; both stop when ctx is cancelled.
func (i *Instance) Start(ctx context.Context) {
	i.Monitor.Start(ctx)
	i.Report.Start(ctx)
}
