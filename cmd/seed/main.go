package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/geoauth/config"
)

// Seeds a handful of reference countries and cities for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seed := map[string][]string{
		"Uzbekistan": {"Tashkent", "Samarkand", "Bukhara"},
		"Kazakhstan": {"Almaty", "Astana"},
		"Kyrgyzstan": {"Bishkek", "Osh"},
	}

	for country, cities := range seed {
		var id int64
		err := db.QueryRow(`
			INSERT INTO countries (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET updated_at = now()
			RETURNING id
		`, country).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed country %s: %v", country, err)
		}
		for _, city := range cities {
			if _, err := db.Exec(`
				INSERT INTO cities (name, country_id)
				SELECT $1, $2
				WHERE NOT EXISTS (
					SELECT 1 FROM cities WHERE name = $1 AND country_id = $2
				)
			`, city, id); err != nil {
				log.Fatalf("failed to seed city %s: %v", city, err)
			}
		}
		fmt.Printf("seeded %s (%d cities)\n", country, len(cities))
	}
}
