package dashboard

type SummaryResponse struct {
	TotalEmployees int64 `json:"total_employees"`
	PresentToday   int64 `json:"present_today"`
	AbsentToday    int64 `json:"absent_today"`
	NotMarkedToday int64 `json:"not_marked_today"`
}
