package search

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Upper price bounds at or above this are treated as "no cap". Vendors with
// "X onwards" pricing would otherwise vanish from wide-open searches.
const priceCeilingSentinel = 1000000

// Amenity display names mapped to their storage paths. The underlying keys
// are inconsistent across vendor categories, so the table is the contract.
var amenityPaths = map[string]string{
	"AC":                 "details.airConditioning",
	"Parking":            "details.parkingCar",
	"Valet Parking":      "details.valetParking",
	"Power Backup":       "details.powerBackup",
	"Electricity Backup": "details.powerBackup",
	"Bridal Room":        "details.bridalSuite",
	"Wheelchair Access":  "details.wheelchair",
	"Sound System":       "details.avEquipment",
	"Lift":               "details.lift",
}

// looseBool matches boolean attributes stored by legacy writers as any of
// true, "true", "Yes" or "yes". Tolerated on purpose; do not tighten without
// a data migration.
var looseBool = primitive.M{"$in": []interface{}{true, "true", "Yes", "yes"}}

// Facet names mapped to their details paths. Values within one facet combine
// as OR ($in); distinct facets combine as AND.
var facetPaths = map[string]string{
	"venueType":         "details.venueType",
	"foodPolicy":        "details.cateringPolicy",
	"decorPolicy":       "details.decorPolicy",
	"cuisines":          "details.cuisines",
	"dietaryOptions":    "details.dietaryOptions",
	"decorThemes":       "details.decorThemes",
	"photographyStyles": "details.photographyStyles",
	"equipment":         "details.equipment",
}

// Facets whose stored values are free text and need case-insensitive
// matching.
var caseInsensitiveFacets = map[string]bool{
	"cuisines": true,
}

// BuildFilter compiles a Query into a MongoDB predicate over the vendors
// collection. Only verified vendors with a business name are ever matched.
func BuildFilter(q Query) primitive.M {
	filter := primitive.M{
		"isVerified":   true,
		"businessName": primitive.M{"$exists": true, "$ne": ""},
	}

	if q.Category != "" && q.Category != "all" {
		filter["vendorType"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(q.Category) + "$",
			Options: "i",
		}
	}

	if price := priceFilter(q.MinPrice, q.MaxPrice); price != nil {
		filter["minPrice"] = price
	}

	if q.Capacity != "" {
		// Loose textual containment against the stored capacity field. This
		// ranks wrong for values like "500-1000" and is flagged for a numeric
		// upgrade; kept byte-compatible until then.
		filter["details.capacity"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(q.Capacity),
			Options: "i",
		}
	}

	for _, amenity := range q.Amenities {
		if path, ok := amenityPaths[amenity]; ok {
			filter[path] = looseBool
		}
	}

	for facet, values := range q.Facets {
		path, ok := facetPaths[facet]
		if !ok {
			continue
		}
		if caseInsensitiveFacets[facet] {
			patterns := make([]interface{}, 0, len(values))
			for _, v := range values {
				patterns = append(patterns, primitive.Regex{
					Pattern: regexp.QuoteMeta(v),
					Options: "i",
				})
			}
			filter[path] = primitive.M{"$in": patterns}
			continue
		}
		in := make([]interface{}, 0, len(values))
		for _, v := range values {
			in = append(in, v)
		}
		filter[path] = primitive.M{"$in": in}
	}

	if q.City != "" {
		cityRegex := primitive.Regex{Pattern: regexp.QuoteMeta(q.City), Options: "i"}
		filter["$or"] = []primitive.M{
			{"city": cityRegex},
			{"village": cityRegex},
			{"mandal": cityRegex},
			{"addressLine1": cityRegex},
		}
	}

	return filter
}

func priceFilter(min, max *float64) primitive.M {
	if min == nil && max == nil {
		return nil
	}
	price := primitive.M{"$gte": 0.0}
	if min != nil {
		price["$gte"] = *min
	}
	if max != nil && *max < priceCeilingSentinel {
		price["$lte"] = *max
	}
	return price
}
