package repository

import (
	"context"

	"github.com/oksasatya/geoauth/internal/domain/entity"
)

// CityRepository defines city reference-data operations. Read results carry
// the owning country as an {id, name} projection.
type CityRepository interface {
	Create(ctx context.Context, name string, countryID int64) (*entity.City, error)
	GetByID(ctx context.Context, id int64) (*entity.City, error)
	List(ctx context.Context) ([]entity.City, error)
	Update(ctx context.Context, id int64, name string, countryID int64) (*entity.City, error)
	Delete(ctx context.Context, id int64) error
}
