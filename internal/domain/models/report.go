package models

// WeeklyReport aggregates the last seven days of money movement. Each sum
// is computed independently and is zero when no records qualify.
type WeeklyReport struct {
	WeekIncome   float64 `json:"weekIncome"`
	WeekExpenses float64 `json:"weekExpenses"`
	WeekLosses   float64 `json:"weekLosses"`
}
