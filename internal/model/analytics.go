package model

// TimeSeriesPoint is one bucket of a dated count series.
type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CategoryCount is one slice of a category distribution.
type CategoryCount struct {
	CategoryName string `json:"categoryName"`
	Count        int    `json:"count"`
}

// LocationCount is one slice of a per-location distribution.
type LocationCount struct {
	LocationName string `json:"locationName"`
	Count        int    `json:"count"`
}

// ReportAnalytics backs the admin reports dashboard.
type ReportAnalytics struct {
	ReportsByCategory []CategoryCount   `json:"reports_by_category"`
	ReportsByLocation []LocationCount   `json:"reports_by_location"`
	ReportsTrend      []TimeSeriesPoint `json:"reports_trend"`
	RecentReports     []ReportListItem  `json:"recent_reports"`
}

// UserAnalytics backs the admin users dashboard. The secondary breakdowns
// are loosely shaped server-side, so they stay as raw maps until a view
// needs them.
type UserAnalytics struct {
	RegistrationsByDate []TimeSeriesPoint        `json:"registrations_by_date"`
	UsersByLocation     []map[string]interface{} `json:"users_by_location"`
	UsersByRole         []map[string]interface{} `json:"users_by_role"`
	MostActiveUsers     []map[string]interface{} `json:"most_active_users"`
}

// NameValue is the {name, value} pair the category dashboard charts eat.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CategoryTrendRow is one (period, category) cell of the trend query.
type CategoryTrendRow struct {
	PeriodDate   string `json:"period_date"`
	CategoryName string `json:"categoryName"`
	Count        int    `json:"count"`
}

// CategoryLocationRow breaks a category down by state.
type CategoryLocationRow struct {
	CategoryName string `json:"categoryName"`
	State        string `json:"state"`
	Count        int    `json:"count"`
}

// CategoryAnalysis is the category dashboard payload.
type CategoryAnalysis struct {
	MostReportedCategories []NameValue           `json:"most_reported_categories"`
	CategoryTrends         []CategoryTrendRow    `json:"category_trends"`
	CategoryByLocation     []CategoryLocationRow `json:"category_by_location"`
	Period                 string                `json:"period"`
}

// HeatMapPoint is one weighted coordinate for the location heat map.
type HeatMapPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Weight    int     `json:"weight"`
}

// LocationInsights is the location dashboard payload.
type LocationInsights struct {
	ReportsByState []map[string]interface{} `json:"reports_by_state"`
	TopCities      []map[string]interface{} `json:"top_cities"`
	HeatMapData    []HeatMapPoint           `json:"heat_map_data"`
}

// SystemPerformance is the operational dashboard payload.
type SystemPerformance struct {
	TableSizes     []map[string]interface{} `json:"table_sizes"`
	RecordCounts   []map[string]interface{} `json:"record_counts"`
	APIUsage       []map[string]interface{} `json:"api_usage"`
	ErrorRates     []map[string]interface{} `json:"error_rates"`
	UserEngagement []map[string]interface{} `json:"user_engagement"`
	HourlyActivity []HourBucket             `json:"hourly_activity"`
	MonthlyGrowth  []MonthGrowth            `json:"monthly_growth"`
}

type HourBucket struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type MonthGrowth struct {
	Month          string  `json:"month"`
	Count          int     `json:"count"`
	PrevMonthCount int     `json:"prev_month_count"`
	GrowthPercent  float64 `json:"growth_percent"`
}
