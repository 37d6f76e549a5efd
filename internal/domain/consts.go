package domain

import "time"

// ISO 8601 weekday constants
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

const (
	// DefaultPollInterval is how often the occupancy endpoint is sampled.
	DefaultPollInterval = 30 * time.Second

	// DefaultReminderCooldown is the minimum gap between two punch-out
	// reminders to the same user.
	DefaultReminderCooldown = 600 * time.Second

	// DefaultLFGCooldown gates all LFG posts globally, regardless of who
	// requested the previous one.
	DefaultLFGCooldown = 60 * time.Minute

	// DefaultReportWeekday / DefaultReportTime: Monday 05:00.
	DefaultReportWeekday = Monday
	DefaultReportTime    = "05:00"
)
