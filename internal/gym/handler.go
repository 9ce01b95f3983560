package gym

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gymfinder/internal/api"
	"gymfinder/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service     Service
	defaultCity string
}

func NewHandler(service Service, defaultCity string) *Handler {
	return &Handler{
		service:     service,
		defaultCity: defaultCity,
	}
}

// @Summary      Search gyms
// @Description  Filter, rank and paginate gyms. lat and lng must be given together.
// @Tags         gyms
// @Produce      json
// @Param        lat query number false "Latitude of the search origin"
// @Param        lng query number false "Longitude of the search origin"
// @Param        city query string false "City name, case-insensitive substring"
// @Param        radius query number false "Search radius in km (1-50)" default(10)
// @Param        keyword query string false "Matched against name, localized name and address"
// @Param        gymType query string false "One of crossfit_certified, comprehensive, specialty"
// @Param        programs query string false "Comma-separated program names; results support all of them"
// @Param        sortBy query string false "distance, rating or name" default(distance)
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Page size (1-100)" default(20)
// @Success      200 {object} api.Response{data=gym.SearchResult}
// @Failure      400 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /api/gyms [get]
func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.Fail(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	if (q.Lat == nil) != (q.Lng == nil) {
		api.Fail(c, http.StatusBadRequest, "lat and lng must be provided together")
		return
	}

	// Neither a geo point nor a city narrows the search, so fall back
	// to the configured default city.
	if !q.HasGeo() && q.City == "" {
		q.City = h.defaultCity
	}

	result, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		logger.Errorf("gym search failed: %v (query=%+v)", err, q)
		api.Fail(c, http.StatusInternalServerError, "failed to search gyms")
		return
	}

	api.Success(c, result)
}

// @Summary      Get gym details
// @Tags         gyms
// @Produce      json
// @Param        uuid path string true "Gym UUID"
// @Param        lat query number false "Latitude for distance computation"
// @Param        lng query number false "Longitude for distance computation"
// @Success      200 {object} api.Response{data=gym.ListItem}
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /api/gyms/{uuid} [get]
func (h *Handler) GetGym(c *gin.Context) {
	uuid := c.Param("uuid")

	lat, ok := optionalFloat(c, "lat")
	if !ok {
		api.Fail(c, http.StatusBadRequest, "invalid lat")
		return
	}
	lng, ok := optionalFloat(c, "lng")
	if !ok {
		api.Fail(c, http.StatusBadRequest, "invalid lng")
		return
	}
	if (lat == nil) != (lng == nil) {
		api.Fail(c, http.StatusBadRequest, "lat and lng must be provided together")
		return
	}

	item, err := h.service.GetByUUID(c.Request.Context(), uuid, lat, lng)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			api.Fail(c, http.StatusNotFound, "gym not found")
			return
		}
		logger.Errorf("gym lookup failed: %v (uuid=%s)", err, uuid)
		api.Fail(c, http.StatusInternalServerError, "failed to fetch gym")
		return
	}

	api.Success(c, item)
}

// @Summary      List cities with gyms
// @Description  Distinct cities ordered by gym count, descending.
// @Tags         gyms
// @Produce      json
// @Success      200 {object} api.Response{data=[]string}
// @Failure      500 {object} api.Response
// @Router       /api/gyms/cities [get]
func (h *Handler) ListCities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		logger.Errorf("city listing failed: %v", err)
		api.Fail(c, http.StatusInternalServerError, "failed to fetch cities")
		return
	}

	api.Success(c, cities)
}

// @Summary      List countries and their cities
// @Description  Countries ascending; cities within a country by gym count, descending.
// @Tags         gyms
// @Produce      json
// @Success      200 {object} api.Response{data=map[string][]string}
// @Failure      500 {object} api.Response
// @Router       /api/gyms/countries [get]
func (h *Handler) ListCountries(c *gin.Context) {
	countries, err := h.service.ListCountries(c.Request.Context())
	if err != nil {
		logger.Errorf("country listing failed: %v", err)
		api.Fail(c, http.StatusInternalServerError, "failed to fetch countries")
		return
	}

	api.Success(c, countries)
}

func optionalFloat(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &f, true
}

// bindErrorMessage turns validator errors into user-facing messages;
// anything else (type coercion failures) reports generically.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "malformed query parameters"
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "gte":
			messages = append(messages, field+" must be at least "+fe.Param())
		case "lte":
			messages = append(messages, field+" must be at most "+fe.Param())
		case "oneof":
			messages = append(messages, field+" must be one of: "+fe.Param())
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return strings.Join(messages, "; ")
}
