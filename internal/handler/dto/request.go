package dto

type ReserveSeatsRequest struct {
	ScheduleID           int64    `json:"schedule_id" binding:"required,gt=0"`
	CoachTypeID          int64    `json:"coach_type_id" binding:"required,gt=0"`
	SourceStationID      int64    `json:"source_station_id" binding:"required,gt=0"`
	DestinationStationID int64    `json:"destination_station_id" binding:"required,gt=0"`
	SelectedSeats        []string `json:"selected_seats" binding:"required,min=1,max=6"`
	SessionID            string   `json:"session_id"`
}

type PassengerRequest struct {
	Name           string `json:"name" binding:"required"`
	Age            int    `json:"age" binding:"required,gt=0,lte=120"`
	Gender         string `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
	SeatPreference string `json:"seat_preference"`
}

type ConfirmBookingRequest struct {
	ReservationID        int64              `json:"reservation_id" binding:"required,gt=0"`
	SourceStationID      int64              `json:"source_station_id" binding:"required,gt=0"`
	DestinationStationID int64              `json:"destination_station_id" binding:"required,gt=0"`
	FarePerSeat          float64            `json:"fare_per_seat" binding:"omitempty,gt=0"`
	Passengers           []PassengerRequest `json:"passengers" binding:"required,min=1,max=6,dive"`
	ContactEmail         string             `json:"contact_email" binding:"required,email"`
	ContactPhone         string             `json:"contact_phone" binding:"required,len=10,numeric"`
}

type SeatMatrixRequest struct {
	ScheduleID           int64 `json:"schedule_id" binding:"required,gt=0"`
	CoachTypeID          int64 `json:"coach_type_id" binding:"required,gt=0"`
	SourceStationID      int64 `json:"source_station_id" binding:"required,gt=0"`
	DestinationStationID int64 `json:"destination_station_id" binding:"required,gt=0"`
}

type SearchTrainsRequest struct {
	SourceStationID      int64  `json:"source_station_id" binding:"required,gt=0"`
	DestinationStationID int64  `json:"destination_station_id" binding:"required,gt=0"`
	JourneyDate          string `json:"journey_date" binding:"required"`
}

type CreateStationRequest struct {
	Code  string `json:"code" binding:"required"`
	Name  string `json:"name" binding:"required"`
	City  string `json:"city" binding:"required"`
	State string `json:"state"`
	Zone  string `json:"zone"`
}

type CoachGroupRequest struct {
	CoachTypeID int64    `json:"coach_type_id" binding:"required,gt=0"`
	Labels      []string `json:"labels" binding:"required,min=1"`
}

type CreateTrainRequest struct {
	Number               string              `json:"train_number" binding:"required"`
	Name                 string              `json:"train_name" binding:"required"`
	SourceStationID      int64               `json:"source_station_id" binding:"required,gt=0"`
	DestinationStationID int64               `json:"destination_station_id" binding:"required,gt=0"`
	DistanceKm           int                 `json:"distance_km" binding:"required,gt=0"`
	Coaches              []CoachGroupRequest `json:"coaches" binding:"required,min=1,dive"`
}

type CreateScheduleRequest struct {
	TrainID       int64  `json:"train_id" binding:"required,gt=0"`
	DepartureDate string `json:"departure_date" binding:"required"`
}

type SetFareRequest struct {
	TrainID     int64   `json:"train_id" binding:"required,gt=0"`
	CoachTypeID int64   `json:"coach_type_id" binding:"required,gt=0"`
	RatePerKm   float64 `json:"rate_per_km" binding:"gte=0"`
	BaseFare    float64 `json:"base_fare" binding:"gte=0"`
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	FullName       string `json:"full_name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
