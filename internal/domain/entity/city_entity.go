package entity

import "time"

type City struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	CountryID int64          `json:"country_id"`
	Country   *CountryOption `json:"country,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
