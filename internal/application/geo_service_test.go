package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/geoauth/internal/domain/entity"
	"github.com/oksasatya/geoauth/internal/domain/repository"
)

type mockCountryRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.Country
}

func newMockCountryRepo() *mockCountryRepo {
	return &mockCountryRepo{rows: map[int64]*entity.Country{}}
}

func (m *mockCountryRepo) Create(ctx context.Context, name string) (*entity.Country, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c := &entity.Country{ID: m.nextID, Name: name, Cities: []entity.City{}, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.rows[c.ID] = c
	return c, nil
}

func (m *mockCountryRepo) GetByID(ctx context.Context, id int64) (*entity.Country, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCountryRepo) GetByName(ctx context.Context, name string) (*entity.Country, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockCountryRepo) List(ctx context.Context) ([]entity.Country, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.Country{}
	for i := int64(1); i <= m.nextID; i++ {
		if c, ok := m.rows[i]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCountryRepo) ListOptions(ctx context.Context) ([]entity.CountryOption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.CountryOption{}
	for i := int64(1); i <= m.nextID; i++ {
		if c, ok := m.rows[i]; ok {
			out = append(out, entity.CountryOption{ID: c.ID, Name: c.Name})
		}
	}
	return out, nil
}

func (m *mockCountryRepo) UpdateName(ctx context.Context, id int64, name string) (*entity.Country, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	cp := *c
	return &cp, nil
}

func (m *mockCountryRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type mockCityRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.City
}

func newMockCityRepo() *mockCityRepo {
	return &mockCityRepo{rows: map[int64]*entity.City{}}
}

func (m *mockCityRepo) Create(ctx context.Context, name string, countryID int64) (*entity.City, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c := &entity.City{ID: m.nextID, Name: name, CountryID: countryID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.rows[c.ID] = c
	return c, nil
}

func (m *mockCityRepo) GetByID(ctx context.Context, id int64) (*entity.City, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCityRepo) List(ctx context.Context) ([]entity.City, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.City{}
	for i := int64(1); i <= m.nextID; i++ {
		if c, ok := m.rows[i]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCityRepo) Update(ctx context.Context, id int64, name string, countryID int64) (*entity.City, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.Name = name
	c.CountryID = countryID
	c.UpdatedAt = time.Now()
	cp := *c
	return &cp, nil
}

func (m *mockCityRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func newGeoTestService(t *testing.T) (*GeoService, *mockCountryRepo, *mockCityRepo, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	countries := newMockCountryRepo()
	cities := newMockCityRepo()
	svc := NewGeoService(countries, cities, rdb, testLogger())
	return svc, countries, cities, mr
}

func TestCountriesCacheAside(t *testing.T) {
	svc, countries, _, mr := newGeoTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCountry(ctx, "Uzbekistan")
	require.NoError(t, err)

	list, err := svc.GetAllCountries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, mr.Exists("countries"), "collection cached after read")

	// Mutate behind the cache; the cached list is served until invalidated.
	_, err = countries.Create(ctx, "Sneaky")
	require.NoError(t, err)
	list, err = svc.GetAllCountries(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "read path must serve the cached collection")

	// A write through the service invalidates the collection key.
	_, err = svc.CreateCountry(ctx, "Kazakhstan")
	require.NoError(t, err)
	assert.False(t, mr.Exists("countries"))

	list, err = svc.GetAllCountries(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestCountryCreatePrimesSingularKey(t *testing.T) {
	svc, _, _, mr := newGeoTestService(t)
	ctx := context.Background()

	c, err := svc.CreateCountry(ctx, "Uzbekistan")
	require.NoError(t, err)
	assert.True(t, mr.Exists("country_1"), "create primes the singular entry")

	got, err := svc.GetCountryByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Uzbekistan", got.Name)
}

func TestCountryDuplicateName(t *testing.T) {
	svc, _, _, _ := newGeoTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCountry(ctx, "Uzbekistan")
	require.NoError(t, err)
	_, err = svc.CreateCountry(ctx, " Uzbekistan ")
	assert.ErrorIs(t, err, ErrCountryExists, "name comparison uses the trimmed name")

	second, err := svc.CreateCountry(ctx, "Kazakhstan")
	require.NoError(t, err)
	_, err = svc.UpdateCountry(ctx, second.ID, "Uzbekistan")
	assert.ErrorIs(t, err, ErrCountryExists)
}

func TestCountryNotFound(t *testing.T) {
	svc, _, _, _ := newGeoTestService(t)
	ctx := context.Background()

	_, err := svc.GetCountryByID(ctx, 42)
	assert.ErrorIs(t, err, ErrCountryNotFound)
	_, err = svc.UpdateCountry(ctx, 42, "Nowhere")
	assert.ErrorIs(t, err, ErrCountryNotFound)
	err = svc.DeleteCountry(ctx, 42)
	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestCityCreateInvalidatesCollection(t *testing.T) {
	svc, _, _, _ := newGeoTestService(t)
	ctx := context.Background()

	country, err := svc.CreateCountry(ctx, "Uzbekistan")
	require.NoError(t, err)
	_, err = svc.CreateCity(ctx, "Tashkent", country.ID)
	require.NoError(t, err)

	list, err := svc.GetAllCities(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// createCity after a cached read: the next getAll must reflect the new
	// city, not the stale collection.
	_, err = svc.CreateCity(ctx, "Samarkand", country.ID)
	require.NoError(t, err)

	list, err = svc.GetAllCities(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Samarkand", list[1].Name)
}

func TestCityUnknownCountryHint(t *testing.T) {
	svc, _, _, _ := newGeoTestService(t)
	ctx := context.Background()

	first, err := svc.CreateCountry(ctx, "Uzbekistan")
	require.NoError(t, err)

	_, err = svc.CreateCity(ctx, "Atlantis City", 404)
	var unknown *UnknownCountryError
	require.ErrorAs(t, err, &unknown)
	require.Len(t, unknown.Available, 1)
	assert.Equal(t, first.ID, unknown.Available[0].ID)
	assert.Equal(t, "Uzbekistan", unknown.Available[0].Name)
}

func TestCityLifecycle(t *testing.T) {
	svc, _, _, mr := newGeoTestService(t)
	ctx := context.Background()

	country, err := svc.CreateCountry(ctx, "Uzbekistan")
	require.NoError(t, err)
	city, err := svc.CreateCity(ctx, "Tashkent", country.ID)
	require.NoError(t, err)

	got, err := svc.GetCityByID(ctx, city.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tashkent", got.Name)
	assert.True(t, mr.Exists("city_1"), "read primes the singular entry")

	updated, err := svc.UpdateCity(ctx, city.ID, "Toshkent", country.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toshkent", updated.Name)
	assert.False(t, mr.Exists("city_1"), "update invalidates the singular entry")

	require.NoError(t, svc.DeleteCity(ctx, city.ID))
	_, err = svc.GetCityByID(ctx, city.ID)
	assert.ErrorIs(t, err, ErrCityNotFound)

	err = svc.DeleteCity(ctx, city.ID)
	assert.ErrorIs(t, err, ErrCityNotFound)
}
