package config

import (
	"os"
	"strconv"
	"time"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	Port               string

	LedgerPath   string
	StatusURL    string
	PollInterval time.Duration

	LogChannelID     string
	LFGChannelID     string
	LFGRoleGroup     string
	LFGCooldown      time.Duration
	ReminderCooldown time.Duration

	ReportWeekday int // ISO 8601, 1 = Monday
	ReportTime    string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		Port:               getEnv("PORT", "3000"),
		LedgerPath:         getEnv("LEDGER_PATH", "./punchcard.json"),
		StatusURL:          getEnv("STATUS_URL", ""),
		PollInterval:       getEnvSeconds("POLL_INTERVAL_SECONDS", domain.DefaultPollInterval),
		LogChannelID:       getEnv("LOG_CHANNEL_ID", ""),
		LFGChannelID:       getEnv("LFG_CHANNEL_ID", ""),
		LFGRoleGroup:       getEnv("LFG_ROLE_GROUP_ID", ""),
		LFGCooldown:        getEnvMinutes("LFG_COOLDOWN_MINUTES", domain.DefaultLFGCooldown),
		ReminderCooldown:   getEnvSeconds("REMINDER_COOLDOWN_SECONDS", domain.DefaultReminderCooldown),
		ReportWeekday:      getEnvInt("REPORT_WEEKDAY", domain.DefaultReportWeekday),
		ReportTime:         getEnv("REPORT_TIME", domain.DefaultReportTime),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultValue
}

func getEnvMinutes(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return defaultValue
}
