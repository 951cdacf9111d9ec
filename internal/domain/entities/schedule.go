package entities

// ScheduleConfig is the daily trigger time of the report dispatch job.
// Active=false means the scheduler is Stopped and Hour/Minute are the last
// configured values (zero if never scheduled).
type ScheduleConfig struct {
	Hour   int  `json:"hour"`
	Minute int  `json:"minute"`
	Active bool `json:"active"`
}
