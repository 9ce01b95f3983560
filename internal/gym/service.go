package gym

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gymfinder/internal/logger"
	"gymfinder/internal/metrics"
)

var ErrGymNotFound = errors.New("gym not found")

const (
	SortByDistance = "distance"
	SortByRating   = "rating"
	SortByName     = "name"
)

const (
	cacheKeyCities    = "gyms:cities"
	cacheKeyCountries = "gyms:countries"
)

type Service interface {
	Search(ctx context.Context, q SearchQuery) (*SearchResult, error)
	GetByUUID(ctx context.Context, uuid string, lat, lng *float64) (*ListItem, error)
	ListCities(ctx context.Context) ([]string, error)
	ListCountries(ctx context.Context) (map[string][]string, error)
}

// Cache is the listing cache consumed by the service. A nil cache
// disables caching entirely.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Options fixes the per-deployment policy of the search engine.
type Options struct {
	// DefaultCity is echoed as currentCity when neither the query nor
	// the result page can resolve one.
	DefaultCity string

	// EnforceRadius drops rows beyond the requested radius from the
	// returned page. The reference behavior leaves radius informational.
	EnforceRadius bool

	Labels Labels

	// Now supplies wall-clock time for business-status evaluation.
	// Nil means time.Now.
	Now func() time.Time

	Cache    Cache
	CacheTTL time.Duration
}

type service struct {
	repo RepositoryInterface
	opts Options
}

func NewService(repo RepositoryInterface, opts Options) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Labels.GymTypes == nil {
		opts.Labels = DefaultLabels()
	}
	return &service{repo: repo, opts: opts}
}

func (s *service) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	f := buildFilter(q)

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	offset := (q.Page - 1) * q.PageSize
	gyms, err := s.repo.Search(ctx, f, q.SortBy, offset, q.PageSize)
	if err != nil {
		return nil, err
	}

	now := s.opts.Now()
	items := make([]ListItem, 0, len(gyms))
	for _, g := range gyms {
		items = append(items, s.project(g, q.Lat, q.Lng, now))
	}

	// Distance is not a stored column, so the store pre-orders by
	// featured/rating and the page is re-sorted here. Stable: rows
	// without a distance keep their store order, after all rows that
	// have one.
	if q.SortBy == SortByDistance && q.HasGeo() {
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i].Distance, items[j].Distance
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return *a < *b
		})
	}

	if s.opts.EnforceRadius && q.HasGeo() {
		items = withinRadius(items, q.Radius)
	}

	totalPages := (total + q.PageSize - 1) / q.PageSize
	metrics.RecordSearch(q.SortBy, len(items))

	return &SearchResult{
		List: items,
		Pagination: Pagination{
			Page:       q.Page,
			PageSize:   q.PageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    q.Page < totalPages,
			HasPrev:    q.Page > 1,
		},
		CurrentCity: s.resolveCurrentCity(q, items),
		Query:       q,
	}, nil
}

func (s *service) GetByUUID(ctx context.Context, uuid string, lat, lng *float64) (*ListItem, error) {
	g, err := s.repo.GetByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	item := s.project(*g, lat, lng, s.opts.Now())
	return &item, nil
}

func (s *service) ListCities(ctx context.Context) ([]string, error) {
	var cities []string
	if s.cacheGet(ctx, cacheKeyCities, &cities) {
		return cities, nil
	}

	rows, err := s.repo.GroupByCity(ctx)
	if err != nil {
		return nil, err
	}

	cities = make([]string, 0, len(rows))
	for _, row := range rows {
		cities = append(cities, row.City)
	}

	s.cacheSet(ctx, cacheKeyCities, cities)
	return cities, nil
}

func (s *service) ListCountries(ctx context.Context) (map[string][]string, error) {
	var countries map[string][]string
	if s.cacheGet(ctx, cacheKeyCountries, &countries) {
		return countries, nil
	}

	rows, err := s.repo.GroupByCountryCity(ctx)
	if err != nil {
		return nil, err
	}

	countries = make(map[string][]string)
	seen := make(map[string]map[string]bool)
	for _, row := range rows {
		if seen[row.Country] == nil {
			seen[row.Country] = make(map[string]bool)
		}
		if seen[row.Country][row.City] {
			continue
		}
		seen[row.Country][row.City] = true
		countries[row.Country] = append(countries[row.Country], row.City)
	}

	s.cacheSet(ctx, cacheKeyCountries, countries)
	return countries, nil
}

// buildFilter derives the repository predicate from a query. Program
// tokens are comma-separated, trimmed, empties dropped; a matching
// record must contain every token.
func buildFilter(q SearchQuery) Filter {
	f := Filter{
		City:    q.City,
		Keyword: q.Keyword,
		GymType: q.GymType,
	}

	if q.Programs != "" {
		for _, p := range strings.Split(q.Programs, ",") {
			if p = strings.TrimSpace(p); p != "" {
				f.Programs = append(f.Programs, p)
			}
		}
	}

	return f
}

// project computes the derived per-row fields: distance from the query
// point, business status and today's hours, and the type label.
func (s *service) project(g Gym, lat, lng *float64, now time.Time) ListItem {
	var distance *float64
	if lat != nil && lng != nil && g.Latitude != nil && g.Longitude != nil {
		d := Haversine(*lat, *lng, *g.Latitude, *g.Longitude)
		distance = &d
	}

	status, todayHours := BusinessStatus(g.OpeningHours, now, s.opts.Labels)

	return ListItem{
		ID:                g.ID,
		UUID:              g.UUID,
		Name:              g.Name,
		NameEn:            g.NameEn,
		ShortDescription:  g.ShortDescription,
		Address:           g.Address,
		City:              g.City,
		District:          g.District,
		Latitude:          g.Latitude,
		Longitude:         g.Longitude,
		Rating:            g.Rating,
		ReviewCount:       g.ReviewCount,
		GymType:           g.GymType,
		GymTypeLabel:      s.opts.Labels.GymTypeLabel(g.GymType),
		CrossfitCertified: g.CrossfitCertified,
		SupportedPrograms: g.SupportedPrograms,
		Tags:              g.Tags,
		Logo:              g.Logo,
		Images:            g.Images,
		Phone:             g.Phone,
		Verified:          g.Verified,
		Featured:          g.Featured,
		Distance:          distance,
		BusinessStatus:    status,
		TodayHours:        todayHours,
	}
}

func withinRadius(items []ListItem, radius float64) []ListItem {
	kept := items[:0]
	for _, item := range items {
		if item.Distance != nil && *item.Distance > radius {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// resolveCurrentCity echoes the queried city, falls back to the first
// result's city for geo searches, then to the configured default.
func (s *service) resolveCurrentCity(q SearchQuery, items []ListItem) string {
	if q.City != "" {
		return q.City
	}
	if q.HasGeo() && len(items) > 0 {
		return items[0].City
	}
	return s.opts.DefaultCity
}

func (s *service) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.opts.Cache == nil {
		return false
	}

	hit, err := s.opts.Cache.GetJSON(ctx, key, dest)
	if err != nil {
		logger.Debugf("cache get %s: %v", key, err)
		return false
	}
	if !hit {
		metrics.RecordCacheMiss(key)
		return false
	}

	metrics.RecordCacheHit(key)
	return true
}

func (s *service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.opts.Cache == nil {
		return
	}
	if err := s.opts.Cache.SetJSON(ctx, key, value, s.opts.CacheTTL); err != nil {
		logger.Debugf("cache set %s: %v", key, err)
	}
}
