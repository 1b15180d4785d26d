package search

import (
	"math"
	"sort"

	"github.com/torislove/gomandap-server/internal/geo"
	"github.com/torislove/gomandap-server/internal/models"
)

// RankedVendor is a vendor annotated with its distance from the query
// origin, rounded to one decimal. Distance is nil when the query had no
// origin or the vendor has no stored coordinates.
type RankedVendor struct {
	models.Vendor
	Distance *float64 `json:"distance,omitempty"`
}

// unknownDistance marks vendors without stored coordinates. It sorts after
// any real distance.
const unknownDistance = math.MaxFloat64

type candidate struct {
	vendor models.Vendor
	dist   float64
}

// RankGeo annotates candidates with distance from origin, drops those with
// known coordinates beyond radiusKm, and orders by priority (desc) then
// distance (asc). Vendors without coordinates have an unknown location, not a
// known-far one, so they are never dropped by radius; they sort after every
// known-distance vendor of equal priority.
func RankGeo(vendors []models.Vendor, origin geo.Point, radiusKm float64) []RankedVendor {
	candidates := make([]candidate, 0, len(vendors))
	for _, v := range vendors {
		dist := unknownDistance
		if v.Coordinates != nil {
			dist = geo.DistanceKm(origin, geo.Point{Lat: v.Coordinates.Lat, Lon: v.Coordinates.Lon})
			if dist > radiusKm {
				continue
			}
		}
		candidates = append(candidates, candidate{vendor: v, dist: dist})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].vendor.Priority != candidates[j].vendor.Priority {
			return candidates[i].vendor.Priority > candidates[j].vendor.Priority
		}
		return candidates[i].dist < candidates[j].dist
	})

	ranked := make([]RankedVendor, 0, len(candidates))
	for _, c := range candidates {
		rv := RankedVendor{Vendor: c.vendor}
		if c.dist != unknownDistance {
			d := geo.RoundKm(c.dist)
			rv.Distance = &d
		}
		ranked = append(ranked, rv)
	}
	return ranked
}

// RankByPriority orders vendors by priority (desc) with ties broken by
// createdAt (desc, newest first) so pagination stays deterministic.
func RankByPriority(vendors []models.Vendor) []RankedVendor {
	sorted := make([]models.Vendor, len(vendors))
	copy(sorted, vendors)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	ranked := make([]RankedVendor, 0, len(sorted))
	for _, v := range sorted {
		ranked = append(ranked, RankedVendor{Vendor: v})
	}
	return ranked
}

// ExcludeDemo removes seeded demo accounts. It runs after ranking, right
// before the response, so the reported count reflects what the client sees.
func ExcludeDemo(ranked []RankedVendor) []RankedVendor {
	out := ranked[:0]
	for _, rv := range ranked {
		if !rv.IsDemo() {
			out = append(out, rv)
		}
	}
	return out
}
