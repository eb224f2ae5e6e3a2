package consts

import "time"

const (
	AnalyticsOverviewKey = "analytics:overview:"
	AnalyticsVideosKey   = "analytics:videos:"
	AnalyticsGrowthKey   = "analytics:growth:"
)

// AnalyticsCacheTTL 聚合查询缓存过期时间
const AnalyticsCacheTTL = 300 * time.Second
