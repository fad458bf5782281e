package domain

// TrainFare is the configured rate of one coach class on one train.
type TrainFare struct {
	ID          int64   `json:"id"`
	TrainID     int64   `json:"train_id"`
	CoachTypeID int64   `json:"coach_type_id"`
	RatePerKm   float64 `json:"rate_per_km"`
	BaseFare    float64 `json:"base_fare"`
	IsActive    bool    `json:"is_active"`
}

// Fare computes the per-seat price for a journey of distanceKm kilometres.
func Fare(distanceKm int, ratePerKm, baseFare float64) float64 {
	return baseFare + float64(distanceKm)*ratePerKm
}

// PerSeat applies the fare's rate table to the train's distance.
func (f *TrainFare) PerSeat(distanceKm int) float64 {
	return Fare(distanceKm, f.RatePerKm, f.BaseFare)
}

type CreateFareInput struct {
	TrainID     int64
	CoachTypeID int64
	RatePerKm   float64
	BaseFare    float64
}
