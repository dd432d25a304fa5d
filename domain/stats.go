package domain

import "math"

// DashboardStats is the aggregate payload served to the dashboard. All
// counts are scoped to one user and computed fresh on every request.
type DashboardStats struct {
	TotalTasks      int `json:"total_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	OverdueTasks    int `json:"overdue_tasks"`
	Productivity    int `json:"productivity"`
	HighPriority    int `json:"high_priority_tasks"`
	RecentCompleted int `json:"recent_completed"`
}

// ProductivityPercent returns round(completed/total*100) with halves rounded
// away from zero (so 0.5 -> 1), or 0 when there are no tasks.
func ProductivityPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
