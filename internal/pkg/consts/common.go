package consts

const (
	PlatformYouTube = "youtube"
)

const (
	PeriodTypeDaily  = "daily"
	PeriodTypeWeekly = "weekly"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	JobWeeklyInsights = "insight.weekly"
	JobDailySync      = "sync.daily"
)
