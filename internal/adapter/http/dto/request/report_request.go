package request

// ScheduleRequest sets the daily dispatch time. Pointers let 0 pass the
// required check.
type ScheduleRequest struct {
	Hour   *int `json:"hour" binding:"required"`
	Minute *int `json:"minute" binding:"required"`
}
