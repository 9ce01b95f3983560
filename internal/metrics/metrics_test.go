package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/gyms", "200"))

	RecordHTTPRequest("GET", "/api/gyms", "200", 0.05)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/gyms", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordSearch(t *testing.T) {
	before := testutil.ToFloat64(SearchesTotal.WithLabelValues("distance"))

	RecordSearch("distance", 7)

	after := testutil.ToFloat64(SearchesTotal.WithLabelValues("distance"))
	assert.Equal(t, before+1, after)
}

func TestRecordCacheHitMiss(t *testing.T) {
	hitsBefore := testutil.ToFloat64(CacheHitsTotal.WithLabelValues("gyms:cities"))
	missesBefore := testutil.ToFloat64(CacheMissesTotal.WithLabelValues("gyms:cities"))

	RecordCacheHit("gyms:cities")
	RecordCacheMiss("gyms:cities")

	assert.Equal(t, hitsBefore+1, testutil.ToFloat64(CacheHitsTotal.WithLabelValues("gyms:cities")))
	assert.Equal(t, missesBefore+1, testutil.ToFloat64(CacheMissesTotal.WithLabelValues("gyms:cities")))
}
