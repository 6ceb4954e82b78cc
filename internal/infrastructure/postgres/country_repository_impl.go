package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/geoauth/internal/domain/entity"
	"github.com/oksasatya/geoauth/internal/domain/repository"
)

type CountryRepository struct {
	pool *pgxpool.Pool
}

func NewCountryRepository(pool *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{pool: pool}
}

func (r *CountryRepository) Create(ctx context.Context, name string) (*entity.Country, error) {
	c := &entity.Country{Name: name, Cities: []entity.City{}}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO countries (name) VALUES ($1)
		RETURNING id, created_at, updated_at
	`, name)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CountryRepository) GetByID(ctx context.Context, id int64) (*entity.Country, error) {
	c := &entity.Country{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM countries WHERE id = $1
	`, id)
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	cities, err := r.citiesOf(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Cities = cities
	return c, nil
}

func (r *CountryRepository) GetByName(ctx context.Context, name string) (*entity.Country, error) {
	c := &entity.Country{Cities: []entity.City{}}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM countries WHERE name = $1
	`, name)
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CountryRepository) List(ctx context.Context) ([]entity.Country, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at, updated_at FROM countries ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := []entity.Country{}
	index := map[int64]int{}
	for rows.Next() {
		c := entity.Country{Cities: []entity.City{}}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		index[c.ID] = len(countries)
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cityRows, err := r.pool.Query(ctx, `
		SELECT id, name, country_id, created_at, updated_at FROM cities ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer cityRows.Close()

	for cityRows.Next() {
		var city entity.City
		if err := cityRows.Scan(&city.ID, &city.Name, &city.CountryID, &city.CreatedAt, &city.UpdatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[city.CountryID]; ok {
			countries[i].Cities = append(countries[i].Cities, city)
		}
	}
	return countries, cityRows.Err()
}

func (r *CountryRepository) ListOptions(ctx context.Context) ([]entity.CountryOption, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM countries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	opts := []entity.CountryOption{}
	for rows.Next() {
		var o entity.CountryOption
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}

func (r *CountryRepository) UpdateName(ctx context.Context, id int64, name string) (*entity.Country, error) {
	c := &entity.Country{ID: id, Name: name, Cities: []entity.City{}}
	row := r.pool.QueryRow(ctx, `
		UPDATE countries SET name = $1, updated_at = now()
		WHERE id = $2
		RETURNING created_at, updated_at
	`, name, id)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CountryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CountryRepository) citiesOf(ctx context.Context, countryID int64) ([]entity.City, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, country_id, created_at, updated_at
		FROM cities WHERE country_id = $1 ORDER BY id
	`, countryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := []entity.City{}
	for rows.Next() {
		var c entity.City
		if err := rows.Scan(&c.ID, &c.Name, &c.CountryID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

var _ repository.CountryRepository = (*CountryRepository)(nil)
