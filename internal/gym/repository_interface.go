package gym

import "context"

// RepositoryInterface is the persistence surface the search engine
// depends on, extracted for mocking in service tests.
type RepositoryInterface interface {
	Search(ctx context.Context, f Filter, sortBy string, offset, limit int) ([]Gym, error)
	Count(ctx context.Context, f Filter) (int, error)
	GetByUUID(ctx context.Context, uuid string) (*Gym, error)
	GroupByCity(ctx context.Context) ([]CityCount, error)
	GroupByCountryCity(ctx context.Context) ([]CountryCityCount, error)
}
