package gym

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine_KnownDistance(t *testing.T) {
	// Beijing to Shanghai, roughly 1067 km.
	d := Haversine(39.9042, 116.4074, 31.2304, 121.4737)
	assert.InDelta(t, 1067, d, 5)
}

func TestHaversine_Symmetric(t *testing.T) {
	a := Haversine(39.9042, 116.4074, 39.9289, 116.3883)
	b := Haversine(39.9289, 116.3883, 39.9042, 116.4074)
	assert.Equal(t, a, b)
	assert.Greater(t, a, 0.0)
}

func TestHaversine_IdenticalPoints(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(39.9042, 116.4074, 39.9042, 116.4074))
}

func TestHaversine_NeverNegative(t *testing.T) {
	cases := [][4]float64{
		{0, 0, 0, 180},
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{89.9, 0, -89.9, 0},
		{39.9042, 116.4074, 39.9043, 116.4074},
	}
	for _, c := range cases {
		assert.GreaterOrEqual(t, Haversine(c[0], c[1], c[2], c[3]), 0.0)
	}
}

func TestHaversine_RoundedToTwoDecimals(t *testing.T) {
	d := Haversine(39.9042, 116.4074, 39.9289, 116.3883)
	assert.InDelta(t, d, math.Round(d*100)/100, 1e-9)
}
