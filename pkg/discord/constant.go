package discord

import "time"

const (
	defaultBaseURL = "https://discord.com/api/webhooks"

	ColorError = 15158332

	MaxDescriptionLen = 4096

	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 500 * time.Millisecond

	DefaultUsername = "users-srv"
	UserAgent       = "users-srv/1.0"
	ReportBugTitle  = "Users Service Error Report"
)
