package domain

import "time"

type TrainStatus string

const (
	TrainStatusActive    TrainStatus = "ACTIVE"
	TrainStatusSuspended TrainStatus = "SUSPENDED"
	TrainStatusRetired   TrainStatus = "RETIRED"
)

type Train struct {
	ID            int64       `json:"id"`
	Number        string      `json:"number"`
	Name          string      `json:"name"`
	SourceID      int64       `json:"source_station_id"`
	DestinationID int64       `json:"destination_station_id"`
	DistanceKm    int         `json:"distance_km"`
	Status        TrainStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// CoachType is a class of service (Sleeper, 3A, ...) with a fixed
// per-coach seat template shared by every physical coach of that type.
type CoachType struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	TotalSeats  int    `json:"total_seats"`
	Description string `json:"description"`
}

type SeatClass string

const (
	SeatClassLower     SeatClass = "LOWER"
	SeatClassMiddle    SeatClass = "MIDDLE"
	SeatClassUpper     SeatClass = "UPPER"
	SeatClassSideLower SeatClass = "SIDE_LOWER"
	SeatClassSideUpper SeatClass = "SIDE_UPPER"
)

// LayoutSeat is one slot of a coach type's seat template.
type LayoutSeat struct {
	SeatNumber int       `json:"seat_number"`
	SeatClass  SeatClass `json:"seat_class"`
}

// TrainCoach is a physical coach instance ("S1", "B2") of a train.
type TrainCoach struct {
	ID          int64  `json:"id"`
	TrainID     int64  `json:"train_id"`
	CoachTypeID int64  `json:"coach_type_id"`
	Label       string `json:"label"`
}

type CreateTrainInput struct {
	Number        string
	Name          string
	SourceID      int64
	DestinationID int64
	DistanceKm    int
	// Coaches maps a coach type id to the physical coach labels of that
	// type, e.g. {2: ["S1", "S2"]}.
	Coaches map[int64][]string
}
