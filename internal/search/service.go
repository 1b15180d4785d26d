package search

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/singleflight"

	"github.com/torislove/gomandap-server/internal/cache"
	"github.com/torislove/gomandap-server/internal/logging"
	"github.com/torislove/gomandap-server/internal/models"
)

// VendorSource loads searchable vendor projections matching a predicate.
// Sensitive fields (credentials, push tokens) are already stripped.
type VendorSource interface {
	Search(ctx context.Context, filter primitive.M) ([]models.Vendor, error)
}

// Result is the search response envelope.
type Result struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Data    []RankedVendor `json:"data"`
}

// Service orchestrates a search: compile predicate, load candidates, rank,
// strip demo accounts. Identical concurrent queries are collapsed through
// singleflight, and whole results are cached when a cache is configured.
type Service struct {
	source   VendorSource
	cache    cache.Cache
	cacheTTL time.Duration
	sf       singleflight.Group
}

// NewService creates a search service. cache may be nil to disable caching.
func NewService(source VendorSource, c cache.Cache, cacheTTL time.Duration) *Service {
	return &Service{source: source, cache: c, cacheTTL: cacheTTL}
}

// Search runs the full pipeline for one query. A failing vendor store
// degrades to an empty successful result: discovery pages soft-fail rather
// than hard-crash on a transient datastore blip. Only a defect in our own
// ranking path surfaces as an error.
func (s *Service) Search(ctx context.Context, q Query) (*Result, error) {
	key := cacheKey(q)

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if cached := s.cacheGet(ctx, key); cached != nil {
			return cached, nil
		}

		vendors, err := s.source.Search(ctx, BuildFilter(q))
		if err != nil {
			if ctx.Err() != nil {
				// Caller went away; no point fabricating a degraded result.
				return nil, ctx.Err()
			}
			l := logging.Ctx(ctx)
			l.Warn().Err(err).Msg("vendor store unavailable, degrading to empty result")
			return &Result{Success: true, Count: 0, Data: []RankedVendor{}}, nil
		}

		var ranked []RankedVendor
		if q.Origin != nil {
			ranked = RankGeo(vendors, *q.Origin, q.RadiusKm)
		} else {
			ranked = RankByPriority(vendors)
		}
		ranked = ExcludeDemo(ranked)

		res := &Result{Success: true, Count: len(ranked), Data: ranked}
		s.cacheSet(key, res)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Result), nil
}

func (s *Service) cacheGet(ctx context.Context, key string) *Result {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != cache.ErrCacheMiss {
			l := logging.Ctx(ctx)
			l.Warn().Err(err).Msg("search cache get error")
		}
		return nil
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil
	}
	return &res
}

func (s *Service) cacheSet(key string, res *Result) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			l := logging.L()
			l.Warn().Err(err).Str("key", key).Msg("search cache set error")
		}
	}()
}

// cacheKey builds a deterministic key for a query. Facets are emitted in
// sorted order so equivalent queries share an entry.
func cacheKey(q Query) string {
	var b strings.Builder
	fmt.Fprintf(&b, "q:%s:%s", strings.ToLower(q.Category), strings.ToLower(q.City))
	if q.Origin != nil {
		fmt.Fprintf(&b, ":%.4f,%.4f,%.1f", q.Origin.Lat, q.Origin.Lon, q.RadiusKm)
	}
	if q.MinPrice != nil {
		fmt.Fprintf(&b, ":min%.0f", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		fmt.Fprintf(&b, ":max%.0f", *q.MaxPrice)
	}
	if q.Capacity != "" {
		fmt.Fprintf(&b, ":cap%s", q.Capacity)
	}
	if len(q.Amenities) > 0 {
		fmt.Fprintf(&b, ":am%s", strings.Join(q.Amenities, ","))
	}
	names := make([]string, 0, len(q.Facets))
	for name := range q.Facets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, ":%s=%s", name, strings.Join(q.Facets[name], ","))
	}
	return b.String()
}
