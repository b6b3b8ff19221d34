package dto

// OwnerSummaryStats aggregates an owner's project and task counts.
type OwnerSummaryStats struct {
	TotalProjects   int64 `json:"total_projects"`
	ActiveProjects  int64 `json:"active_projects"`
	TotalTasks      int64 `json:"total_tasks"`
	TasksTodo       int64 `json:"tasks_todo"`
	TasksInProgress int64 `json:"tasks_inprogress"`
	TasksDone       int64 `json:"tasks_done"`
}

// OwnerDashboardResponse is the owner's snapshot view.
type OwnerDashboardResponse struct {
	SummaryStats OwnerSummaryStats  `json:"summary_stats"`
	ProjectsList []*ProjectResponse `json:"projects_list"`
}

// EmployeeDashboardResponse is any authenticated user's snapshot view.
type EmployeeDashboardResponse struct {
	MyProjects     []*ProjectSimpleResponse `json:"my_projects"`
	MyTeams        []*TeamSimpleResponse    `json:"my_teams"`
	MyCurrentTasks []*TaskResponse          `json:"my_current_tasks"`
}
