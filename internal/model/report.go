package model

// DashboardSummary 後台儀表板彙總
// DailyCounts 為截至今日的 7 個日曆日，由最舊排到最新，與 DailyLabels 對齊
type DashboardSummary struct {
	TotalBookings int      `json:"total_bookings"`
	TotalRevenue  int      `json:"total_revenue"`
	DailyLabels   []string `json:"daily_labels"`
	DailyCounts   []int    `json:"daily_counts"`
}
