package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
	"github.com/KD4-Mahesh-92414/RailBooker/internal/handler/dto"
)

const dateLayout = "2006-01-02"

type BookingSvc interface {
	ReserveSeats(ctx context.Context, userID int64, in domain.ReserveSeatsInput) (*domain.ReservationResult, error)
	ConfirmBooking(ctx context.Context, userID int64, in domain.ConfirmBookingInput) (*domain.BookingConfirmation, error)
	ReservationStatus(ctx context.Context, userID, reservationID int64) (*domain.SeatReservation, string, error)
	GetBookingByPNR(ctx context.Context, pnr string) (*domain.BookingDetails, error)
	ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID int64) error
}

type MatrixSvc interface {
	SeatMatrix(ctx context.Context, userID int64, in domain.SeatMatrixInput) ([]domain.CoachMatrix, error)
}

type ScheduleSvc interface {
	Search(ctx context.Context, sourceID, destinationID int64, date time.Time) ([]domain.SearchResult, error)
	Create(ctx context.Context, in domain.CreateScheduleInput) (*domain.Schedule, error)
}

type CatalogSvc interface {
	CreateStation(ctx context.Context, in domain.CreateStationInput) (*domain.Station, error)
	ListStations(ctx context.Context) ([]domain.Station, error)
	CreateTrain(ctx context.Context, in domain.CreateTrainInput) (*domain.Train, error)
	ListCoachTypes(ctx context.Context) ([]domain.CoachType, error)
	SetFare(ctx context.Context, in domain.CreateFareInput) (*domain.TrainFare, error)
}

type UserSvc interface {
	Create(ctx context.Context, in domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type Handler struct {
	bookingService  BookingSvc
	matrixService   MatrixSvc
	scheduleService ScheduleSvc
	catalogService  CatalogSvc
	userService     UserSvc
}

func NewHandler(
	bookingService BookingSvc,
	matrixService MatrixSvc,
	scheduleService ScheduleSvc,
	catalogService CatalogSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		bookingService:  bookingService,
		matrixService:   matrixService,
		scheduleService: scheduleService,
		catalogService:  catalogService,
		userService:     userService,
	}
}

// Booking

func (h *Handler) ReserveSeats(c *ginext.Context) {
	var req dto.ReserveSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.bookingService.ReserveSeats(c.Request.Context(), userID(c), domain.ReserveSeatsInput{
		ScheduleID:    req.ScheduleID,
		CoachTypeID:   req.CoachTypeID,
		SourceID:      req.SourceStationID,
		DestinationID: req.DestinationStationID,
		SelectedSeats: req.SelectedSeats,
		SessionID:     req.SessionID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReserveSeatsResponse(result))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	var req dto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	passengers := make([]domain.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passengers = append(passengers, domain.Passenger{
			Name:           p.Name,
			Age:            p.Age,
			Gender:         domain.Gender(p.Gender),
			SeatPreference: p.SeatPreference,
		})
	}

	confirmation, err := h.bookingService.ConfirmBooking(c.Request.Context(), userID(c), domain.ConfirmBookingInput{
		ReservationID: req.ReservationID,
		SourceID:      req.SourceStationID,
		DestinationID: req.DestinationStationID,
		FarePerSeat:   req.FarePerSeat,
		Passengers:    passengers,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConfirmBookingResponse(confirmation))
}

func (h *Handler) ReservationStatus(c *ginext.Context) {
	reservationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || reservationID <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	res, state, err := h.bookingService.ReservationStatus(c.Request.Context(), userID(c), reservationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReservationStatusResponse{
		ReservationID: res.ID,
		State:         state,
		ExpiresAt:     res.ExpiresAt.Format(time.RFC3339),
	})
}

func (h *Handler) GetBookingByPNR(c *ginext.Context) {
	pnr := c.Param("pnr")
	if pnr == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pnr"})
		return
	}

	details, err := h.bookingService.GetBookingByPNR(c.Request.Context(), pnr)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListUserBookings(c.Request.Context(), userID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, dto.ToBookingResponse(&bookings[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err = h.bookingService.CancelBooking(c.Request.Context(), userID(c), bookingID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Seats

func (h *Handler) SeatMatrix(c *ginext.Context) {
	var req dto.SeatMatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	matrix, err := h.matrixService.SeatMatrix(c.Request.Context(), userID(c), domain.SeatMatrixInput{
		ScheduleID:    req.ScheduleID,
		CoachTypeID:   req.CoachTypeID,
		SourceID:      req.SourceStationID,
		DestinationID: req.DestinationStationID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"coaches": dto.ToCoachMatrixResponse(matrix)})
}

// Trains and schedules

func (h *Handler) SearchTrains(c *ginext.Context) {
	var req dto.SearchTrainsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.JourneyDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid journey_date format, expected YYYY-MM-DD",
		})
		return
	}

	results, err := h.scheduleService.Search(c.Request.Context(), req.SourceStationID, req.DestinationStationID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SearchResultResponse, 0, len(results))
	for i := range results {
		resp = append(resp, dto.ToSearchResultResponse(&results[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateTrain(c *ginext.Context) {
	var req dto.CreateTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	coaches := make(map[int64][]string, len(req.Coaches))
	for _, group := range req.Coaches {
		coaches[group.CoachTypeID] = append(coaches[group.CoachTypeID], group.Labels...)
	}

	train, err := h.catalogService.CreateTrain(c.Request.Context(), domain.CreateTrainInput{
		Number:        req.Number,
		Name:          req.Name,
		SourceID:      req.SourceStationID,
		DestinationID: req.DestinationStationID,
		DistanceKm:    req.DistanceKm,
		Coaches:       coaches,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTrainResponse(train))
}

func (h *Handler) CreateSchedule(c *ginext.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid departure_date format, expected YYYY-MM-DD",
		})
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), domain.CreateScheduleInput{
		TrainID:       req.TrainID,
		DepartureDate: date,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToScheduleResponse(schedule))
}

func (h *Handler) SetFare(c *ginext.Context) {
	var req dto.SetFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	fare, err := h.catalogService.SetFare(c.Request.Context(), domain.CreateFareInput{
		TrainID:     req.TrainID,
		CoachTypeID: req.CoachTypeID,
		RatePerKm:   req.RatePerKm,
		BaseFare:    req.BaseFare,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFareResponse(fare))
}

// Stations

func (h *Handler) CreateStation(c *ginext.Context) {
	var req dto.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	station, err := h.catalogService.CreateStation(c.Request.Context(), domain.CreateStationInput{
		Code:  req.Code,
		Name:  req.Name,
		City:  req.City,
		State: req.State,
		Zone:  req.Zone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStationResponse(station))
}

func (h *Handler) ListStations(c *ginext.Context) {
	stations, err := h.catalogService.ListStations(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.StationResponse, 0, len(stations))
	for i := range stations {
		resp = append(resp, dto.ToStationResponse(&stations[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListCoachTypes(c *ginext.Context) {
	types, err := h.catalogService.ListCoachTypes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CoachTypeResponse, 0, len(types))
	for i := range types {
		resp = append(resp, dto.ToCoachTypeResponse(&types[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Email:          req.Email,
		FullName:       req.FullName,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.ToUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// userID reads the identity the middleware resolved for this request.
func userID(c *ginext.Context) int64 {
	return c.GetInt64("user_id")
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrStationNotFound),
		errors.Is(err, domain.ErrTrainNotFound),
		errors.Is(err, domain.ErrCoachTypeNotFound),
		errors.Is(err, domain.ErrScheduleNotFound),
		errors.Is(err, domain.ErrFareNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrReservationForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrScheduleNotBookable),
		errors.Is(err, domain.ErrReservationExpired),
		errors.Is(err, domain.ErrBookingAlreadyCancelled):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSameStations),
		errors.Is(err, domain.ErrCoachTypeNotOnTrain),
		errors.Is(err, domain.ErrPassengerCountMismatch),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
