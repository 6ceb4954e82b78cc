package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/geoauth/internal/domain/entity"
	"github.com/oksasatya/geoauth/internal/domain/repository"
)

type CityRepository struct {
	pool *pgxpool.Pool
}

func NewCityRepository(pool *pgxpool.Pool) *CityRepository {
	return &CityRepository{pool: pool}
}

const citySelect = `
	SELECT ci.id, ci.name, ci.country_id, ci.created_at, ci.updated_at,
	       co.id, co.name
	FROM cities ci
	JOIN countries co ON co.id = ci.country_id
`

func scanCity(row pgx.Row) (*entity.City, error) {
	c := &entity.City{Country: &entity.CountryOption{}}
	if err := row.Scan(&c.ID, &c.Name, &c.CountryID, &c.CreatedAt, &c.UpdatedAt,
		&c.Country.ID, &c.Country.Name); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CityRepository) Create(ctx context.Context, name string, countryID int64) (*entity.City, error) {
	c := &entity.City{Name: name, CountryID: countryID}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cities (name, country_id) VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, name, countryID)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CityRepository) GetByID(ctx context.Context, id int64) (*entity.City, error) {
	row := r.pool.QueryRow(ctx, citySelect+` WHERE ci.id = $1`, id)
	c, err := scanCity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CityRepository) List(ctx context.Context) ([]entity.City, error) {
	rows, err := r.pool.Query(ctx, citySelect+` ORDER BY ci.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := []entity.City{}
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, err
		}
		cities = append(cities, *c)
	}
	return cities, rows.Err()
}

func (r *CityRepository) Update(ctx context.Context, id int64, name string, countryID int64) (*entity.City, error) {
	c := &entity.City{ID: id, Name: name, CountryID: countryID}
	row := r.pool.QueryRow(ctx, `
		UPDATE cities SET name = $1, country_id = $2, updated_at = now()
		WHERE id = $3
		RETURNING created_at, updated_at
	`, name, countryID, id)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CityRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CityRepository = (*CityRepository)(nil)
