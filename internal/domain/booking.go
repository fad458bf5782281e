package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed          BookingStatus = "CONFIRMED"
	BookingStatusCancelled          BookingStatus = "CANCELLED"
	BookingStatusPending            BookingStatus = "PENDING"
	BookingStatusFailed             BookingStatus = "FAILED"
	BookingStatusRAC                BookingStatus = "RAC"
	BookingStatusPartiallyCancelled BookingStatus = "PARTIALLY_CANCELLED"
)

// OccupyingBookingStatuses are the booking states whose tickets keep seats
// occupied for availability purposes.
var OccupyingBookingStatuses = []BookingStatus{
	BookingStatusConfirmed,
	BookingStatusPartiallyCancelled,
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Booking is a confirmed reservation identified by its PNR. It owns its
// tickets; tickets are deleted with the booking.
type Booking struct {
	ID            int64         `json:"id"`
	PNR           string        `json:"pnr"`
	UserID        int64         `json:"user_id"`
	ScheduleID    int64         `json:"schedule_id"`
	CoachTypeID   int64         `json:"coach_type_id"`
	SourceID      int64         `json:"source_station_id"`
	DestinationID int64         `json:"destination_station_id"`
	JourneyDate   time.Time     `json:"journey_date"`
	TotalFare     float64       `json:"total_fare"`
	Status        BookingStatus `json:"status"`
	ContactEmail  string        `json:"contact_email"`
	ContactPhone  string        `json:"contact_phone"`
	BookedAt      time.Time     `json:"booked_at"`
}

type TicketStatus string

const (
	TicketStatusConfirmed TicketStatus = "CONFIRMED"
	TicketStatusCancelled TicketStatus = "CANCELLED"
)

// Ticket is one passenger's seat assignment within a booking.
type Ticket struct {
	ID            int64        `json:"id"`
	BookingID     int64        `json:"booking_id"`
	PassengerName string       `json:"passenger_name"`
	Age           int          `json:"age"`
	Gender        Gender       `json:"gender"`
	CoachLabel    string       `json:"coach_label"`
	SeatNumber    int          `json:"seat_number"`
	Fare          float64      `json:"fare"`
	Status        TicketStatus `json:"status"`
}

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Payment records the simulated payment captured with a booking.
type Payment struct {
	ID            int64         `json:"id"`
	BookingID     int64         `json:"booking_id"`
	UserID        int64         `json:"user_id"`
	TransactionID string        `json:"transaction_id"`
	Amount        float64       `json:"amount"`
	Method        string        `json:"method"`
	Status        PaymentStatus `json:"status"`
	PaidAt        time.Time     `json:"paid_at"`
}

type Passenger struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         Gender `json:"gender"`
	SeatPreference string `json:"seat_preference,omitempty"`
}

type ConfirmBookingInput struct {
	ReservationID int64
	SourceID      int64
	DestinationID int64
	FarePerSeat   float64 // 0 means "recompute from the fare table"
	Passengers    []Passenger
	ContactEmail  string
	ContactPhone  string
}

// BookingConfirmation is the result of a successful confirm.
type BookingConfirmation struct {
	PNR           string             `json:"pnr"`
	BookingStatus BookingStatus      `json:"booking_status"`
	TotalFare     float64            `json:"total_fare"`
	JourneyDate   time.Time          `json:"journey_date"`
	Train         TrainSummary       `json:"train_details"`
	Passengers    []PassengerDetails `json:"passengers"`
}

type TrainSummary struct {
	TrainNumber        string `json:"train_number"`
	TrainName          string `json:"train_name"`
	SourceStation      string `json:"source_station"`
	DestinationStation string `json:"destination_station"`
	CoachType          string `json:"coach_type"`
}

type PassengerDetails struct {
	Name       string       `json:"name"`
	Age        int          `json:"age"`
	Gender     Gender       `json:"gender"`
	SeatNumber string       `json:"seat_number"`
	Status     TicketStatus `json:"status"`
	Fare       float64      `json:"fare"`
}

// BookingDetails is a booking with its tickets, loaded eagerly.
type BookingDetails struct {
	Booking Booking  `json:"booking"`
	Tickets []Ticket `json:"tickets"`
}

const (
	ReservationStateActive  = "ACTIVE"
	ReservationStateExpired = "EXPIRED"
)
