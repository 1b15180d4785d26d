package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/torislove/gomandap-server/internal/geo"
)

// DefaultRadiusKm applies when an origin is supplied without a radius.
const DefaultRadiusKm = 50

// Query is a parsed, request-scoped search. Zero values mean "no constraint".
type Query struct {
	Category string
	City     string

	// Origin is nil when no usable lat/lon was supplied; geo mode is off.
	Origin   *geo.Point
	RadiusKm float64

	MinPrice *float64
	MaxPrice *float64

	Capacity  string
	Amenities []string

	// Facets maps a facet name from facetPaths to its requested values.
	Facets map[string][]string
}

// Facet parameter names recognized by the compiler. Anything else in the
// query string is ignored, so new front-end filters degrade gracefully
// instead of erroring.
var facetParams = []string{
	"venueType",
	"foodPolicy",
	"decorPolicy",
	"cuisines",
	"dietaryOptions",
	"decorThemes",
	"photographyStyles",
	"equipment",
}

// ParseValues builds a Query from raw URL parameters. Search is a discovery
// surface, so parsing is lenient throughout: malformed numbers read as
// "constraint absent", never as an error.
func ParseValues(values url.Values) Query {
	q := Query{
		City:     strings.TrimSpace(values.Get("city")),
		RadiusKm: DefaultRadiusKm,
		Capacity: strings.TrimSpace(values.Get("capacity")),
		Facets:   map[string][]string{},
	}

	// The category filter answers to three historical parameter names.
	for _, name := range []string{"category", "vendorType", "type"} {
		if v := strings.TrimSpace(values.Get(name)); v != "" {
			q.Category = v
			break
		}
	}

	lat, latOK := parseFloat(values.Get("lat"))
	lon, lonOK := parseFloat(values.Get("lon"))
	if latOK && lonOK {
		q.Origin = &geo.Point{Lat: lat, Lon: lon}
	}
	if r, ok := parseFloat(values.Get("radius")); ok && r > 0 {
		q.RadiusKm = r
	}

	if v, ok := parseFloat(values.Get("minPrice")); ok {
		q.MinPrice = &v
	}
	if v, ok := parseFloat(values.Get("maxPrice")); ok {
		q.MaxPrice = &v
	}

	q.Amenities = splitList(values.Get("amenities"))

	for _, name := range facetParams {
		if vals := splitList(values.Get(name)); len(vals) > 0 {
			q.Facets[name] = vals
		}
	}

	return q
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
