package search

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/torislove/gomandap-server/internal/geo"
	"github.com/torislove/gomandap-server/internal/models"
)

// vendorAt places a vendor roughly km kilometers due north of origin.
func vendorAt(name string, origin geo.Point, km float64, priority int) models.Vendor {
	return models.Vendor{
		BusinessName: name,
		Priority:     priority,
		Coordinates: &models.Coordinates{
			Lat: origin.Lat + km/111.19,
			Lon: origin.Lon,
		},
	}
}

func names(ranked []RankedVendor) []string {
	out := make([]string, 0, len(ranked))
	for _, rv := range ranked {
		out = append(out, rv.BusinessName)
	}
	return out
}

func TestRankGeoRadiusFilter(t *testing.T) {
	origin := geo.Point{Lat: 16.0, Lon: 80.0}
	vendors := []models.Vendor{
		vendorAt("near", origin, 5, 0),
		vendorAt("far", origin, 15, 0),
		{BusinessName: "nowhere"}, // no coordinates
	}

	ranked := RankGeo(vendors, origin, 10)

	// The 15 km vendor is dropped; the unknown-location vendor is kept.
	assert.Equal(t, []string{"near", "nowhere"}, names(ranked))

	if assert.NotNil(t, ranked[0].Distance) {
		assert.InDelta(t, 5.0, *ranked[0].Distance, 0.1)
	}
	assert.Nil(t, ranked[1].Distance)
}

func TestRankGeoPriorityBeforeDistance(t *testing.T) {
	origin := geo.Point{Lat: 16.0, Lon: 80.0}
	vendors := []models.Vendor{
		vendorAt("close-but-plain", origin, 2, 0),
		vendorAt("far-but-boosted", origin, 40, 5),
	}

	ranked := RankGeo(vendors, origin, 50)

	assert.Equal(t, []string{"far-but-boosted", "close-but-plain"}, names(ranked))
}

func TestRankGeoDistanceWithinPriority(t *testing.T) {
	origin := geo.Point{Lat: 16.0, Lon: 80.0}
	vendors := []models.Vendor{
		vendorAt("b", origin, 20, 3),
		vendorAt("a", origin, 5, 3),
		vendorAt("c", origin, 35, 3),
	}

	ranked := RankGeo(vendors, origin, 50)

	assert.Equal(t, []string{"a", "b", "c"}, names(ranked))
}

func TestRankGeoUnknownDistanceSortsLastWithinPriority(t *testing.T) {
	origin := geo.Point{Lat: 16.0, Lon: 80.0}
	vendors := []models.Vendor{
		{BusinessName: "unlocated", Priority: 3},
		vendorAt("located", origin, 45, 3),
	}

	ranked := RankGeo(vendors, origin, 50)

	// Known location wins the tie even at 45 km out.
	assert.Equal(t, []string{"located", "unlocated"}, names(ranked))
}

func TestRankGeoUnknownDistanceStillRespectsPriority(t *testing.T) {
	origin := geo.Point{Lat: 16.0, Lon: 80.0}
	vendors := []models.Vendor{
		vendorAt("low-priority-near", origin, 1, 0),
		{BusinessName: "boosted-unlocated", Priority: 10},
	}

	ranked := RankGeo(vendors, origin, 50)

	assert.Equal(t, []string{"boosted-unlocated", "low-priority-near"}, names(ranked))
}

func TestRankGeoDistanceRounding(t *testing.T) {
	origin := geo.Point{Lat: 16.0, Lon: 80.0}
	vendors := []models.Vendor{vendorAt("v", origin, 7.77, 0)}

	ranked := RankGeo(vendors, origin, 50)

	if assert.NotNil(t, ranked[0].Distance) {
		d := *ranked[0].Distance
		assert.Equal(t, math.Round(d*10)/10, d, "distance should be rounded to one decimal")
	}
}

func TestRankByPriority(t *testing.T) {
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	vendors := []models.Vendor{
		{BusinessName: "old-plain", Priority: 0, CreatedAt: older},
		{BusinessName: "new-plain", Priority: 0, CreatedAt: newer},
		{BusinessName: "boosted", Priority: 7, CreatedAt: older},
	}

	ranked := RankByPriority(vendors)

	assert.Equal(t, []string{"boosted", "new-plain", "old-plain"}, names(ranked))
	for _, rv := range ranked {
		assert.Nil(t, rv.Distance)
	}
}

func TestExcludeDemo(t *testing.T) {
	ranked := []RankedVendor{
		{Vendor: models.Vendor{BusinessName: "Royal Palace"}},
		{Vendor: models.Vendor{BusinessName: "Demo Hall"}},
		{Vendor: models.Vendor{BusinessName: "grand DEMO venue"}},
		{Vendor: models.Vendor{BusinessName: "Andhra Caterers"}},
	}

	filtered := ExcludeDemo(ranked)

	assert.Equal(t, []string{"Royal Palace", "Andhra Caterers"}, names(filtered))
}
