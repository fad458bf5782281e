package domain

import "time"

type ScheduleStatus string

const (
	ScheduleStatusRunning     ScheduleStatus = "RUNNING"
	ScheduleStatusCancelled   ScheduleStatus = "CANCELLED"
	ScheduleStatusRescheduled ScheduleStatus = "RESCHEDULED"
)

// Schedule is one calendar-day running instance of a train.
type Schedule struct {
	ID            int64          `json:"id"`
	TrainID       int64          `json:"train_id"`
	DepartureDate time.Time      `json:"departure_date"`
	Status        ScheduleStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}

// IsBookable reports whether seats on this schedule may be held or booked.
func (s *Schedule) IsBookable() bool {
	return s.Status == ScheduleStatusRunning || s.Status == ScheduleStatusRescheduled
}

// ScheduleDetails is a schedule joined with its train, loaded eagerly so
// callers never reach through the schedule for train fields.
type ScheduleDetails struct {
	Schedule Schedule `json:"schedule"`
	Train    Train    `json:"train"`
}

type CreateScheduleInput struct {
	TrainID       int64
	DepartureDate time.Time
}

// SearchResult is one bookable train on a searched corridor and date.
type SearchResult struct {
	ScheduleID    int64          `json:"schedule_id"`
	TrainNumber   string         `json:"train_number"`
	TrainName     string         `json:"train_name"`
	DepartureDate time.Time      `json:"departure_date"`
	Status        ScheduleStatus `json:"status"`
	DistanceKm    int            `json:"distance_km"`
	Fares         []CoachFare    `json:"fares"`
}

// CoachFare is the computed per-seat price of one coach class on a train.
type CoachFare struct {
	CoachTypeID   int64   `json:"coach_type_id"`
	CoachTypeCode string  `json:"coach_type_code"`
	FarePerSeat   float64 `json:"fare_per_seat"`
}
