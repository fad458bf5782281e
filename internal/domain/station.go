package domain

import "time"

type Station struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zone      string    `json:"zone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateStationInput struct {
	Code  string
	Name  string
	City  string
	State string
	Zone  string
}
