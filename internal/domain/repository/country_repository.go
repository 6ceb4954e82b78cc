package repository

import (
	"context"

	"github.com/oksasatya/geoauth/internal/domain/entity"
)

// CountryRepository defines country reference-data operations. Read results
// include the country's cities.
type CountryRepository interface {
	Create(ctx context.Context, name string) (*entity.Country, error)
	GetByID(ctx context.Context, id int64) (*entity.Country, error)
	GetByName(ctx context.Context, name string) (*entity.Country, error)
	List(ctx context.Context) ([]entity.Country, error)
	ListOptions(ctx context.Context) ([]entity.CountryOption, error)
	UpdateName(ctx context.Context, id int64, name string) (*entity.Country, error)
	Delete(ctx context.Context, id int64) error
}
