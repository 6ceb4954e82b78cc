package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/geoauth/internal/domain/entity"
	"github.com/oksasatya/geoauth/internal/domain/repository"
	"github.com/oksasatya/geoauth/pkg/helpers"
)

// Cache keys for the reference dataset. Entries have no TTL; they persist
// until a write path invalidates them.
func keyCountries() string       { return "countries" }
func keyCountry(id int64) string { return fmt.Sprintf("country_%d", id) }
func keyCities() string          { return "cities" }
func keyCity(id int64) string    { return fmt.Sprintf("city_%d", id) }

// GeoService implements cache-aside CRUD over the Country/City reference
// dataset. Reads check Redis first and populate it on miss; writes mutate
// Postgres then invalidate the affected singular key and the collection key.
type GeoService struct {
	Countries repository.CountryRepository
	Cities    repository.CityRepository
	Redis     *redis.Client
	Logger    *logrus.Logger
}

func NewGeoService(countries repository.CountryRepository, cities repository.CityRepository, rdb *redis.Client, logger *logrus.Logger) *GeoService {
	return &GeoService{Countries: countries, Cities: cities, Redis: rdb, Logger: logger}
}

func (s *GeoService) cacheSet(ctx context.Context, key string, v any) {
	if err := helpers.RedisSetJSON(ctx, s.Redis, key, v, 0); err != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("cache set failed")
	}
}

func (s *GeoService) cacheDel(ctx context.Context, keys ...string) {
	if err := helpers.RedisDel(ctx, s.Redis, keys...); err != nil {
		s.Logger.WithError(err).WithField("keys", keys).Warn("cache invalidation failed")
	}
}

// CreateCountry inserts a country with a unique, trimmed name and primes its
// singular cache entry.
func (s *GeoService) CreateCountry(ctx context.Context, name string) (*entity.Country, error) {
	name = strings.TrimSpace(name)

	existing, err := s.Countries.GetByName(ctx, name)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCountryExists
	}

	c, err := s.Countries.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, keyCountry(c.ID), c)
	s.cacheDel(ctx, keyCountries())
	return c, nil
}

func (s *GeoService) GetAllCountries(ctx context.Context) ([]entity.Country, error) {
	var cached []entity.Country
	if ok, err := helpers.RedisGetJSON(ctx, s.Redis, keyCountries(), &cached); err == nil && ok {
		return cached, nil
	} else if err != nil {
		s.Logger.WithError(err).Warn("countries cache read failed")
	}

	countries, err := s.Countries.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, keyCountries(), countries)
	return countries, nil
}

func (s *GeoService) GetCountryByID(ctx context.Context, id int64) (*entity.Country, error) {
	var cached entity.Country
	if ok, err := helpers.RedisGetJSON(ctx, s.Redis, keyCountry(id), &cached); err == nil && ok {
		return &cached, nil
	} else if err != nil {
		s.Logger.WithError(err).WithField("id", id).Warn("country cache read failed")
	}

	c, err := s.Countries.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCountryNotFound
	}
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, keyCountry(id), c)
	return c, nil
}

func (s *GeoService) UpdateCountry(ctx context.Context, id int64, name string) (*entity.Country, error) {
	name = strings.TrimSpace(name)

	if _, err := s.Countries.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}

	sameName, err := s.Countries.GetByName(ctx, name)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if sameName != nil && sameName.ID != id {
		return nil, ErrCountryExists
	}

	c, err := s.Countries.UpdateName(ctx, id, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}
	s.cacheSet(ctx, keyCountry(id), c)
	s.cacheDel(ctx, keyCountries())
	return c, nil
}

func (s *GeoService) DeleteCountry(ctx context.Context, id int64) error {
	if err := s.Countries.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCountryNotFound
		}
		return err
	}
	s.cacheDel(ctx, keyCountry(id), keyCountries())
	return nil
}

// checkCountry validates that countryID references an existing country; on
// failure it returns an UnknownCountryError listing the valid countries.
func (s *GeoService) checkCountry(ctx context.Context, countryID int64) error {
	_, err := s.Countries.GetByID(ctx, countryID)
	if errors.Is(err, repository.ErrNotFound) {
		opts, lErr := s.Countries.ListOptions(ctx)
		if lErr != nil {
			return lErr
		}
		return &UnknownCountryError{Available: opts}
	}
	return err
}

func (s *GeoService) CreateCity(ctx context.Context, name string, countryID int64) (*entity.City, error) {
	if err := s.checkCountry(ctx, countryID); err != nil {
		return nil, err
	}
	c, err := s.Cities.Create(ctx, strings.TrimSpace(name), countryID)
	if err != nil {
		return nil, err
	}
	s.cacheDel(ctx, keyCity(c.ID), keyCities())
	return c, nil
}

func (s *GeoService) GetAllCities(ctx context.Context) ([]entity.City, error) {
	var cached []entity.City
	if ok, err := helpers.RedisGetJSON(ctx, s.Redis, keyCities(), &cached); err == nil && ok {
		return cached, nil
	} else if err != nil {
		s.Logger.WithError(err).Warn("cities cache read failed")
	}

	cities, err := s.Cities.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, keyCities(), cities)
	return cities, nil
}

func (s *GeoService) GetCityByID(ctx context.Context, id int64) (*entity.City, error) {
	var cached entity.City
	if ok, err := helpers.RedisGetJSON(ctx, s.Redis, keyCity(id), &cached); err == nil && ok {
		return &cached, nil
	} else if err != nil {
		s.Logger.WithError(err).WithField("id", id).Warn("city cache read failed")
	}

	c, err := s.Cities.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCityNotFound
	}
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, keyCity(id), c)
	return c, nil
}

func (s *GeoService) UpdateCity(ctx context.Context, id int64, name string, countryID int64) (*entity.City, error) {
	if _, err := s.Cities.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	if err := s.checkCountry(ctx, countryID); err != nil {
		return nil, err
	}

	c, err := s.Cities.Update(ctx, id, strings.TrimSpace(name), countryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	s.cacheDel(ctx, keyCity(id), keyCities())
	return c, nil
}

func (s *GeoService) DeleteCity(ctx context.Context, id int64) error {
	if err := s.Cities.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCityNotFound
		}
		return err
	}
	s.cacheDel(ctx, keyCity(id), keyCities())
	return nil
}
