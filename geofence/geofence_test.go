package geofence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourist-safety/apperrors"
)

type point struct {
	name     string
	lat, lng float64
}

func (p point) Coordinates() (float64, float64) { return p.lat, p.lng }

func TestFindNearby(t *testing.T) {
	places := []point{
		{"center", 12.0, 77.0},
		{"north edge", 12.01, 77.0},
		{"east edge", 12.0, 77.01},
		{"just outside north", 12.0101, 77.0},
		{"far away", 13.0, 78.0},
		{"south west corner", 11.99, 76.99},
	}

	t.Run("returns places inside the inclusive box", func(t *testing.T) {
		got := FindNearby(places, Query{Lat: 12.0, Lng: 77.0, Radius: 0.01})

		names := make([]string, 0, len(got))
		for _, p := range got {
			names = append(names, p.name)
		}
		assert.ElementsMatch(t, []string{"center", "north edge", "east edge", "south west corner"}, names)
	})

	t.Run("every returned place lies in the box and every other place does not", func(t *testing.T) {
		q := Query{Lat: 12.005, Lng: 77.002, Radius: 0.004}
		got := FindNearby(places, q)
		box := q.Box()

		inResult := map[string]bool{}
		for _, p := range got {
			inResult[p.name] = true
		}
		for _, p := range places {
			assert.Equal(t, box.Contains(p.lat, p.lng), inResult[p.name], p.name)
		}
	})

	t.Run("no match yields an empty non-nil slice", func(t *testing.T) {
		got := FindNearby(places, Query{Lat: -33.0, Lng: 151.0, Radius: 0.01})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("zero radius matches only the exact point", func(t *testing.T) {
		got := FindNearby(places, Query{Lat: 12.0, Lng: 77.0, Radius: 0})
		require.Len(t, got, 1)
		assert.Equal(t, "center", got[0].name)
	})
}

func TestParseQuery(t *testing.T) {
	t.Run("defaults radius when omitted", func(t *testing.T) {
		q, err := ParseQuery("12.5", "77.25", "")
		require.NoError(t, err)
		assert.Equal(t, Query{Lat: 12.5, Lng: 77.25, Radius: DefaultRadius}, q)
	})

	t.Run("accepts explicit radius with whitespace", func(t *testing.T) {
		q, err := ParseQuery(" 1 ", "2", " 0.5 ")
		require.NoError(t, err)
		assert.Equal(t, 0.5, q.Radius)
	})

	failures := []struct {
		name, lat, lng, radius, field string
	}{
		{"non numeric lat", "north", "77", "", "lat"},
		{"missing lng", "12", "", "", "lng"},
		{"non numeric radius", "12", "77", "wide", "radius"},
		{"negative radius", "12", "77", "-1", "radius"},
		{"nan lat", "NaN", "77", "", "lat"},
		{"infinite lng", "12", "Inf", "", "lng"},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseQuery(tc.lat, tc.lng, tc.radius)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))

			var appErr *apperrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tc.field, appErr.Field)
		})
	}
}

func TestHaversineDistance(t *testing.T) {
	t.Run("identical points are zero apart", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(48.8566, 2.3522, 48.8566, 2.3522))
	})

	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		assert.InDelta(t, 111195, HaversineDistance(0, 0, 1, 0), 1)
	})

	t.Run("paris to london", func(t *testing.T) {
		d := HaversineDistance(48.8566, 2.3522, 51.5074, -0.1278)
		assert.InDelta(t, 343500, d, 1500)
	})

	t.Run("is symmetric", func(t *testing.T) {
		assert.InDelta(t,
			HaversineDistance(10, 20, -5, 40),
			HaversineDistance(-5, 40, 10, 20),
			1e-6)
	})
}

func TestIsInsideGeofence(t *testing.T) {
	t.Run("center is inside for any non-negative radius", func(t *testing.T) {
		for _, r := range []float64{0, 1, 500, 1e7} {
			assert.True(t, IsInsideGeofence(35.0, 139.0, 35.0, 139.0, r))
		}
	})

	t.Run("respects the radius in meters", func(t *testing.T) {
		// ~1112 m north of the center
		assert.True(t, IsInsideGeofence(0.01, 0, 0, 0, 1200))
		assert.False(t, IsInsideGeofence(0.01, 0, 0, 0, 1000))
	})
}

func TestMockReverseGeocode(t *testing.T) {
	addr := MockReverseGeocode(12.3456789, -7.1)
	assert.Equal(t, "Address at 12.34568, -7.10000", addr.Address)
	assert.Equal(t, "Demo City", addr.City)
	assert.Equal(t, "Demo Country", addr.Country)
}

func TestCheckCoordinates(t *testing.T) {
	assert.NoError(t, CheckCoordinates(90, -180))
	assert.NoError(t, CheckCoordinates(-90, 180))

	err := CheckCoordinates(90.5, 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	assert.Error(t, CheckCoordinates(0, 181))
	assert.Error(t, CheckCoordinates(math.NaN(), 0))
}
