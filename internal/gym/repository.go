package gym

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const gymColumns = `id, uuid, name, name_en, short_description, address, city, district, country,
		latitude, longitude, rating, review_count, gym_type, crossfit_certified,
		supported_programs, tags, logo, images, phone, verified, featured,
		opening_hours, status, deleted_at, created_at, updated_at`

// eligibleWhere is present in every query; rows outside it never
// reach the search engine.
const eligibleWhere = "status = 'active' AND deleted_at IS NULL"

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// buildWhere turns a Filter into a WHERE clause with positional args,
// starting from the eligibility predicate.
func buildWhere(f Filter) (string, []interface{}) {
	conditions := []string{eligibleWhere}
	var args []interface{}

	if f.City != "" {
		args = append(args, "%"+f.City+"%")
		conditions = append(conditions, fmt.Sprintf("city ILIKE $%d", len(args)))
	}

	if f.Keyword != "" {
		args = append(args, "%"+f.Keyword+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR name_en ILIKE $%d OR address ILIKE $%d)", n, n, n))
	}

	if f.GymType != "" {
		args = append(args, f.GymType)
		conditions = append(conditions, fmt.Sprintf("gym_type = $%d", len(args)))
	}

	if len(f.Programs) > 0 {
		args = append(args, pq.Array(f.Programs))
		conditions = append(conditions, fmt.Sprintf("supported_programs @> $%d", len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

// orderHint returns the store-level ORDER BY for a sort key. Distance
// cannot be ordered here since it is not a stored column; the service
// re-sorts the page in memory when a geo point is present. The id
// tiebreak keeps pagination deterministic.
func orderHint(sortBy string) string {
	switch sortBy {
	case "rating":
		return "rating DESC, review_count DESC, featured DESC, id ASC"
	case "name":
		return "name ASC, id ASC"
	default:
		return "featured DESC, rating DESC, review_count DESC, id ASC"
	}
}

func (r *Repository) Search(ctx context.Context, f Filter, sortBy string, offset, limit int) ([]Gym, error) {
	where, args := buildWhere(f)

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM gyms
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, gymColumns, where, orderHint(sortBy), len(args)-1, len(args))

	var gyms []Gym
	if err := r.db.SelectContext(ctx, &gyms, query, args...); err != nil {
		return nil, err
	}
	return gyms, nil
}

func (r *Repository) Count(ctx context.Context, f Filter) (int, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf("SELECT COUNT(*) FROM gyms WHERE %s", where)

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Repository) GetByUUID(ctx context.Context, uuid string) (*Gym, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM gyms
		WHERE uuid = $1 AND %s
	`, gymColumns, eligibleWhere)

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, uuid)
	if err == sql.ErrNoRows {
		return nil, ErrGymNotFound
	}
	if err != nil {
		return nil, err
	}
	return &gym, nil
}

func (r *Repository) GroupByCity(ctx context.Context) ([]CityCount, error) {
	query := fmt.Sprintf(`
		SELECT city, COUNT(*) AS count
		FROM gyms
		WHERE %s
		GROUP BY city
		ORDER BY count DESC, city ASC
	`, eligibleWhere)

	var rows []CityCount
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) GroupByCountryCity(ctx context.Context) ([]CountryCityCount, error) {
	query := fmt.Sprintf(`
		SELECT country, city, COUNT(*) AS count
		FROM gyms
		WHERE %s
		GROUP BY country, city
		ORDER BY country ASC, count DESC, city ASC
	`, eligibleWhere)

	var rows []CountryCityCount
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}
