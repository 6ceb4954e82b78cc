package entity

import "time"

// Country is a reference-data row. Cities is populated on read paths.
type Country struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Cities    []City    `json:"cities"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CountryOption is the {id, name} projection returned as a remediation hint
// when a city write references an unknown country.
type CountryOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
