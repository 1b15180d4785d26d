package geo

import (
	"regexp"
	"strconv"
)

// Map-link extraction strategies, tried in priority order. Each pattern
// captures a lat,lon pair from a different link flavor.
var extractPatterns = []*regexp.Regexp{
	// "@lat,lon" path segment.
	regexp.MustCompile(`@(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)`),
	// "q=lat,lon" or "ll=lat,lon" query parameter.
	regexp.MustCompile(`[?&](?:q|ll)=(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)`),
	// "!3d<lat>!4d<lon>" protocol data markers in short-link formats.
	regexp.MustCompile(`!3d(-?\d+(?:\.\d+)?)!4d(-?\d+(?:\.\d+)?)`),
	// "/place/<name>/@lat,lon" segment.
	regexp.MustCompile(`/place/[^/]+/@(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)`),
}

// Extract parses a free-form map link into a coordinate pair. It returns
// false for empty, malformed or out-of-range input; it never fails louder
// than that.
//
// When the extracted pair is out of range but becomes valid with lat and lon
// swapped, the swapped pair is returned. This papers over a known lat/lon
// transposition bug in upstream data entry; it can mislabel genuinely bad
// links that happen to swap into range, so it is deliberately not extended
// to further cases.
func Extract(link string) (Point, bool) {
	if link == "" {
		return Point{}, false
	}

	for _, re := range extractPatterns {
		m := re.FindStringSubmatch(link)
		if m == nil {
			continue
		}

		lat, err1 := strconv.ParseFloat(m[1], 64)
		lon, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			return Point{}, false
		}

		if inRange(lat, lon) {
			return Point{Lat: lat, Lon: lon}, true
		}
		if inRange(lon, lat) {
			return Point{Lat: lon, Lon: lat}, true
		}
		return Point{}, false
	}

	return Point{}, false
}

func inRange(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
