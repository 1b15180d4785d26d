package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValuesDefaults(t *testing.T) {
	q := ParseValues(url.Values{})

	assert.Empty(t, q.Category)
	assert.Empty(t, q.City)
	assert.Nil(t, q.Origin)
	assert.Equal(t, float64(DefaultRadiusKm), q.RadiusKm)
	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.MaxPrice)
	assert.Empty(t, q.Amenities)
	assert.Empty(t, q.Facets)
}

func TestParseValuesCategoryAliases(t *testing.T) {
	for _, name := range []string{"category", "vendorType", "type"} {
		q := ParseValues(url.Values{name: {"catering"}})
		assert.Equal(t, "catering", q.Category, "param %s", name)
	}
}

func TestParseValuesOrigin(t *testing.T) {
	q := ParseValues(url.Values{
		"lat":    {"16.30"},
		"lon":    {"80.43"},
		"radius": {"25"},
	})

	if assert.NotNil(t, q.Origin) {
		assert.Equal(t, 16.30, q.Origin.Lat)
		assert.Equal(t, 80.43, q.Origin.Lon)
	}
	assert.Equal(t, 25.0, q.RadiusKm)
}

func TestParseValuesLatWithoutLon(t *testing.T) {
	q := ParseValues(url.Values{"lat": {"16.30"}})
	assert.Nil(t, q.Origin)
}

func TestParseValuesMalformedNumbersAreIgnored(t *testing.T) {
	q := ParseValues(url.Values{
		"lat":      {"abc"},
		"lon":      {"80.43"},
		"radius":   {"fast"},
		"minPrice": {"cheap"},
		"maxPrice": {"1e5"},
	})

	assert.Nil(t, q.Origin)
	assert.Equal(t, float64(DefaultRadiusKm), q.RadiusKm)
	assert.Nil(t, q.MinPrice)
	if assert.NotNil(t, q.MaxPrice) {
		assert.Equal(t, 100000.0, *q.MaxPrice)
	}
}

func TestParseValuesAmenitiesAndFacets(t *testing.T) {
	q := ParseValues(url.Values{
		"amenities": {"AC, Parking ,"},
		"cuisines":  {"South Indian,Andhra Special"},
		"venueType": {"banquet"},
		"newFilter": {"whatever"}, // unknown parameter, silently ignored
	})

	assert.Equal(t, []string{"AC", "Parking"}, q.Amenities)
	assert.Equal(t, []string{"South Indian", "Andhra Special"}, q.Facets["cuisines"])
	assert.Equal(t, []string{"banquet"}, q.Facets["venueType"])
	assert.NotContains(t, q.Facets, "newFilter")
}
