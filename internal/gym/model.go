package gym

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
)

// StatusActive marks a gym visible to search. Soft-deleted or inactive
// rows never appear in results.
const StatusActive = "active"

// Gym type values stored in the gym_type column.
const (
	TypeCrossfitCertified = "crossfit_certified"
	TypeComprehensive     = "comprehensive"
	TypeSpecialty         = "specialty"
)

// OpeningHours maps a lowercase weekday name ("monday".."sunday") to
// either a comma-separated list of "HH:MM-HH:MM" ranges or the
// sentinel "closed". Stored as JSONB.
type OpeningHours map[string]string

func (h OpeningHours) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return json.Marshal(h)
}

func (h *OpeningHours) Scan(src interface{}) error {
	if src == nil {
		*h = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return errors.New("opening_hours: unsupported scan type")
	}
}

type Gym struct {
	ID                int            `db:"id" json:"id"`
	UUID              string         `db:"uuid" json:"uuid"`
	Name              string         `db:"name" json:"name"`
	NameEn            *string        `db:"name_en" json:"nameEn,omitempty"`
	ShortDescription  *string        `db:"short_description" json:"shortDescription,omitempty"`
	Address           string         `db:"address" json:"address"`
	City              string         `db:"city" json:"city"`
	District          string         `db:"district" json:"district"`
	Country           string         `db:"country" json:"country"`
	Latitude          *float64       `db:"latitude" json:"latitude,omitempty"`
	Longitude         *float64       `db:"longitude" json:"longitude,omitempty"`
	Rating            float64        `db:"rating" json:"rating"`
	ReviewCount       int            `db:"review_count" json:"reviewCount"`
	GymType           string         `db:"gym_type" json:"gymType"`
	CrossfitCertified bool           `db:"crossfit_certified" json:"crossfitCertified"`
	SupportedPrograms pq.StringArray `db:"supported_programs" json:"supportedPrograms" swaggertype:"array,string"`
	Tags              pq.StringArray `db:"tags" json:"tags" swaggertype:"array,string"`
	Logo              *string        `db:"logo" json:"logo,omitempty"`
	Images            pq.StringArray `db:"images" json:"images" swaggertype:"array,string"`
	Phone             *string        `db:"phone" json:"phone,omitempty"`
	Verified          bool           `db:"verified" json:"verified"`
	Featured          bool           `db:"featured" json:"featured"`
	OpeningHours      OpeningHours   `db:"opening_hours" json:"openingHours,omitempty"`
	Status            string         `db:"status" json:"-"`
	DeletedAt         *time.Time     `db:"deleted_at" json:"-"`
	CreatedAt         time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updatedAt"`
}

// SearchQuery carries the parsed /api/gyms query string. Lat and Lng
// must be given together; the handler rejects a lone coordinate before
// the service sees it.
type SearchQuery struct {
	Lat      *float64 `form:"lat" binding:"omitempty,gte=-90,lte=90" json:"lat,omitempty"`
	Lng      *float64 `form:"lng" binding:"omitempty,gte=-180,lte=180" json:"lng,omitempty"`
	City     string   `form:"city" json:"city,omitempty"`
	Radius   float64  `form:"radius,default=10" binding:"gte=1,lte=50" json:"radius"`
	Keyword  string   `form:"keyword" json:"keyword,omitempty"`
	GymType  string   `form:"gymType" binding:"omitempty,oneof=crossfit_certified comprehensive specialty" json:"gymType,omitempty"`
	Programs string   `form:"programs" json:"programs,omitempty"`
	SortBy   string   `form:"sortBy,default=distance" json:"sortBy"`
	Page     int      `form:"page,default=1" binding:"gte=1" json:"page"`
	PageSize int      `form:"pageSize,default=20" binding:"gte=1,lte=100" json:"pageSize"`
}

// HasGeo reports whether the query carries a usable geo point.
func (q SearchQuery) HasGeo() bool {
	return q.Lat != nil && q.Lng != nil
}

// Filter is the repository-level predicate derived from a SearchQuery.
// The eligibility check (active, not deleted) is implicit in every
// repository query and not part of the filter.
type Filter struct {
	City     string
	Keyword  string
	GymType  string
	Programs []string
}

// ListItem is the display-ready projection of a Gym: the stored fields
// plus per-request derived values.
type ListItem struct {
	ID                int      `json:"id"`
	UUID              string   `json:"uuid"`
	Name              string   `json:"name"`
	NameEn            *string  `json:"nameEn,omitempty"`
	ShortDescription  *string  `json:"shortDescription,omitempty"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	District          string   `json:"district"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Rating            float64  `json:"rating"`
	ReviewCount       int      `json:"reviewCount"`
	GymType           string   `json:"gymType"`
	GymTypeLabel      string   `json:"gymTypeLabel"`
	CrossfitCertified bool     `json:"crossfitCertified"`
	SupportedPrograms []string `json:"supportedPrograms"`
	Tags              []string `json:"tags"`
	Logo              *string  `json:"logo,omitempty"`
	Images            []string `json:"images"`
	Phone             *string  `json:"phone,omitempty"`
	Verified          bool     `json:"verified"`
	Featured          bool     `json:"featured"`
	Distance          *float64 `json:"distance"`
	BusinessStatus    string   `json:"businessStatus"`
	TodayHours        string   `json:"todayHours"`
}

type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type SearchResult struct {
	List        []ListItem  `json:"list"`
	Pagination  Pagination  `json:"pagination"`
	CurrentCity string      `json:"currentCity"`
	Query       SearchQuery `json:"query"`
}

// CityCount is one row of the city grouping query.
type CityCount struct {
	City  string `db:"city" json:"city"`
	Count int    `db:"count" json:"count"`
}

// CountryCityCount is one row of the country/city grouping query.
type CountryCityCount struct {
	Country string `db:"country" json:"country"`
	City    string `db:"city" json:"city"`
	Count   int    `db:"count" json:"count"`
}
