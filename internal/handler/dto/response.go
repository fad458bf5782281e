package dto

import (
	"time"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
)

const dateLayout = "2006-01-02"

type ErrorResponse struct {
	Error string `json:"error"`
}

type ReserveSeatsResponse struct {
	Status                string   `json:"status"`
	ReservationID         int64    `json:"reservation_id,omitempty"`
	LockedSeats           []string `json:"locked_seats,omitempty"`
	ExpiresAt             string   `json:"expires_at,omitempty"`
	TimeoutMinutes        int      `json:"timeout_minutes,omitempty"`
	UnavailableSeats      []string `json:"unavailable_seats"`
	SuggestedAlternatives []string `json:"suggested_alternatives"`
}

type ReservationStatusResponse struct {
	ReservationID int64  `json:"reservation_id"`
	State         string `json:"state"`
	ExpiresAt     string `json:"expires_at"`
}

type PassengerResponse struct {
	Name       string  `json:"name"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	SeatNumber string  `json:"seat_number"`
	Status     string  `json:"status"`
	Fare       float64 `json:"fare"`
}

type TrainSummaryResponse struct {
	TrainNumber        string `json:"train_number"`
	TrainName          string `json:"train_name"`
	SourceStation      string `json:"source_station"`
	DestinationStation string `json:"destination_station"`
	CoachType          string `json:"coach_type"`
}

type ConfirmBookingResponse struct {
	PNR           string               `json:"pnr"`
	BookingStatus string               `json:"booking_status"`
	TotalFare     float64              `json:"total_fare"`
	JourneyDate   string               `json:"journey_date"`
	Train         TrainSummaryResponse `json:"train_details"`
	Passengers    []PassengerResponse  `json:"passengers"`
}

type BookingResponse struct {
	ID          int64   `json:"id"`
	PNR         string  `json:"pnr"`
	ScheduleID  int64   `json:"schedule_id"`
	JourneyDate string  `json:"journey_date"`
	TotalFare   float64 `json:"total_fare"`
	Status      string  `json:"status"`
	BookedAt    string  `json:"booked_at"`
}

type TicketResponse struct {
	PassengerName string  `json:"passenger_name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	SeatNumber    string  `json:"seat_number"`
	Fare          float64 `json:"fare"`
	Status        string  `json:"status"`
}

type BookingDetailsResponse struct {
	Booking BookingResponse  `json:"booking"`
	Tickets []TicketResponse `json:"tickets"`
}

type MatrixSeatResponse struct {
	SeatNumber int    `json:"seat_number"`
	SeatType   string `json:"seat_type"`
	Status     string `json:"status"`
}

type CoachMatrixResponse struct {
	CoachLabel string               `json:"coach_label"`
	Seats      []MatrixSeatResponse `json:"seats"`
}

type CoachFareResponse struct {
	CoachTypeID   int64   `json:"coach_type_id"`
	CoachTypeCode string  `json:"coach_type_code"`
	FarePerSeat   float64 `json:"fare_per_seat"`
}

type SearchResultResponse struct {
	ScheduleID    int64               `json:"schedule_id"`
	TrainNumber   string              `json:"train_number"`
	TrainName     string              `json:"train_name"`
	DepartureDate string              `json:"departure_date"`
	Status        string              `json:"status"`
	DistanceKm    int                 `json:"distance_km"`
	Fares         []CoachFareResponse `json:"fares"`
}

type StationResponse struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state,omitempty"`
	Zone  string `json:"zone,omitempty"`
}

type TrainResponse struct {
	ID                   int64  `json:"id"`
	Number               string `json:"train_number"`
	Name                 string `json:"train_name"`
	SourceStationID      int64  `json:"source_station_id"`
	DestinationStationID int64  `json:"destination_station_id"`
	DistanceKm           int    `json:"distance_km"`
	Status               string `json:"status"`
}

type ScheduleResponse struct {
	ID            int64  `json:"id"`
	TrainID       int64  `json:"train_id"`
	DepartureDate string `json:"departure_date"`
	Status        string `json:"status"`
}

type FareResponse struct {
	ID          int64   `json:"id"`
	TrainID     int64   `json:"train_id"`
	CoachTypeID int64   `json:"coach_type_id"`
	RatePerKm   float64 `json:"rate_per_km"`
	BaseFare    float64 `json:"base_fare"`
}

type CoachTypeResponse struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	TotalSeats  int    `json:"total_seats"`
	Description string `json:"description,omitempty"`
}

type UserResponse struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

func ToReserveSeatsResponse(r *domain.ReservationResult) ReserveSeatsResponse {
	resp := ReserveSeatsResponse{
		Status:                r.Status,
		ReservationID:         r.ReservationID,
		LockedSeats:           r.LockedSeats,
		TimeoutMinutes:        r.TimeoutMinutes,
		UnavailableSeats:      r.UnavailableSeats,
		SuggestedAlternatives: r.SuggestedAlternatives,
	}
	if !r.ExpiresAt.IsZero() {
		resp.ExpiresAt = r.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}

func ToConfirmBookingResponse(c *domain.BookingConfirmation) ConfirmBookingResponse {
	passengers := make([]PassengerResponse, 0, len(c.Passengers))
	for _, p := range c.Passengers {
		passengers = append(passengers, PassengerResponse{
			Name:       p.Name,
			Age:        p.Age,
			Gender:     string(p.Gender),
			SeatNumber: p.SeatNumber,
			Status:     string(p.Status),
			Fare:       p.Fare,
		})
	}

	return ConfirmBookingResponse{
		PNR:           c.PNR,
		BookingStatus: string(c.BookingStatus),
		TotalFare:     c.TotalFare,
		JourneyDate:   c.JourneyDate.Format(dateLayout),
		Train: TrainSummaryResponse{
			TrainNumber:        c.Train.TrainNumber,
			TrainName:          c.Train.TrainName,
			SourceStation:      c.Train.SourceStation,
			DestinationStation: c.Train.DestinationStation,
			CoachType:          c.Train.CoachType,
		},
		Passengers: passengers,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		PNR:         b.PNR,
		ScheduleID:  b.ScheduleID,
		JourneyDate: b.JourneyDate.Format(dateLayout),
		TotalFare:   b.TotalFare,
		Status:      string(b.Status),
		BookedAt:    b.BookedAt.Format(time.RFC3339),
	}
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	tickets := make([]TicketResponse, 0, len(d.Tickets))
	for _, t := range d.Tickets {
		tickets = append(tickets, TicketResponse{
			PassengerName: t.PassengerName,
			Age:           t.Age,
			Gender:        string(t.Gender),
			SeatNumber:    domain.FormatSeatID(t.CoachLabel, t.SeatNumber),
			Fare:          t.Fare,
			Status:        string(t.Status),
		})
	}

	return BookingDetailsResponse{
		Booking: ToBookingResponse(&d.Booking),
		Tickets: tickets,
	}
}

func ToCoachMatrixResponse(matrix []domain.CoachMatrix) []CoachMatrixResponse {
	resp := make([]CoachMatrixResponse, 0, len(matrix))
	for _, cm := range matrix {
		seats := make([]MatrixSeatResponse, 0, len(cm.Seats))
		for _, seat := range cm.Seats {
			seats = append(seats, MatrixSeatResponse{
				SeatNumber: seat.SeatNumber,
				SeatType:   string(seat.SeatClass),
				Status:     seat.Status,
			})
		}
		resp = append(resp, CoachMatrixResponse{CoachLabel: cm.CoachLabel, Seats: seats})
	}
	return resp
}

func ToSearchResultResponse(r *domain.SearchResult) SearchResultResponse {
	fares := make([]CoachFareResponse, 0, len(r.Fares))
	for _, f := range r.Fares {
		fares = append(fares, CoachFareResponse{
			CoachTypeID:   f.CoachTypeID,
			CoachTypeCode: f.CoachTypeCode,
			FarePerSeat:   f.FarePerSeat,
		})
	}

	return SearchResultResponse{
		ScheduleID:    r.ScheduleID,
		TrainNumber:   r.TrainNumber,
		TrainName:     r.TrainName,
		DepartureDate: r.DepartureDate.Format(dateLayout),
		Status:        string(r.Status),
		DistanceKm:    r.DistanceKm,
		Fares:         fares,
	}
}

func ToStationResponse(s *domain.Station) StationResponse {
	return StationResponse{
		ID:    s.ID,
		Code:  s.Code,
		Name:  s.Name,
		City:  s.City,
		State: s.State,
		Zone:  s.Zone,
	}
}

func ToTrainResponse(t *domain.Train) TrainResponse {
	return TrainResponse{
		ID:                   t.ID,
		Number:               t.Number,
		Name:                 t.Name,
		SourceStationID:      t.SourceID,
		DestinationStationID: t.DestinationID,
		DistanceKm:           t.DistanceKm,
		Status:               string(t.Status),
	}
}

func ToScheduleResponse(s *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:            s.ID,
		TrainID:       s.TrainID,
		DepartureDate: s.DepartureDate.Format(dateLayout),
		Status:        string(s.Status),
	}
}

func ToFareResponse(f *domain.TrainFare) FareResponse {
	return FareResponse{
		ID:          f.ID,
		TrainID:     f.TrainID,
		CoachTypeID: f.CoachTypeID,
		RatePerKm:   f.RatePerKm,
		BaseFare:    f.BaseFare,
	}
}

func ToCoachTypeResponse(ct *domain.CoachType) CoachTypeResponse {
	return CoachTypeResponse{
		ID:          ct.ID,
		Code:        ct.Code,
		Name:        ct.Name,
		TotalSeats:  ct.TotalSeats,
		Description: ct.Description,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
