package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/torislove/gomandap-server/internal/cache"
	"github.com/torislove/gomandap-server/internal/logging"
	"github.com/torislove/gomandap-server/internal/repository"
	"github.com/torislove/gomandap-server/internal/search"
)

const (
	featuredLimit    = 10
	featuredCacheTTL = 1 * time.Hour
)

// FeaturedService precomputes the top-priority vendor list for each popular
// city and serves it from redis. A cron job refreshes all lists hourly;
// cache misses fall back to computing on demand.
type FeaturedService struct {
	vendors repository.VendorRepository
	cities  repository.CityRepository
	cache   cache.Cache
}

func NewFeaturedService(vendors repository.VendorRepository, cities repository.CityRepository, c cache.Cache) *FeaturedService {
	return &FeaturedService{vendors: vendors, cities: cities, cache: c}
}

func featuredKey(city string) string {
	return fmt.Sprintf("featured:city:%s", strings.ToLower(strings.TrimSpace(city)))
}

// GetFeatured returns the featured vendors for a city, computing and caching
// the list when no precomputed entry exists.
func (s *FeaturedService) GetFeatured(ctx context.Context, city string) ([]search.RankedVendor, error) {
	key := featuredKey(city)

	data, err := s.cache.Get(ctx, key)
	if err == nil {
		var vendors []search.RankedVendor
		if err := json.Unmarshal(data, &vendors); err == nil {
			return vendors, nil
		}
		// Corrupt entry; recompute below.
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		l := logging.Ctx(ctx)
		l.Warn().Err(err).Str("city", city).Msg("featured cache get error")
	}

	vendors, err := s.compute(ctx, city)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, vendors)
	return vendors, nil
}

// RefreshAll recomputes the featured list for every active popular city.
// Wired to an hourly cron in main.
func (s *FeaturedService) RefreshAll(ctx context.Context) {
	l := logging.L()

	cities, err := s.cities.ActiveCities(ctx)
	if err != nil {
		l.Warn().Err(err).Msg("failed to load popular cities for featured refresh")
		return
	}

	for _, city := range cities {
		vendors, err := s.compute(ctx, city.Name)
		if err != nil {
			l.Warn().Err(err).Str("city", city.Name).Msg("failed to compute featured vendors")
			continue
		}
		s.store(ctx, featuredKey(city.Name), vendors)
		l.Info().Str("city", city.Name).Int("count", len(vendors)).Msg("featured vendors refreshed")
	}
}

func (s *FeaturedService) compute(ctx context.Context, city string) ([]search.RankedVendor, error) {
	filter := search.BuildFilter(search.Query{City: city})

	candidates, err := s.vendors.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	ranked := search.ExcludeDemo(search.RankByPriority(candidates))
	if len(ranked) > featuredLimit {
		ranked = ranked[:featuredLimit]
	}
	return ranked, nil
}

func (s *FeaturedService) store(ctx context.Context, key string, vendors []search.RankedVendor) {
	data, err := json.Marshal(vendors)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, featuredCacheTTL); err != nil {
		l := logging.Ctx(ctx)
		l.Warn().Err(err).Str("key", key).Msg("featured cache set error")
	}
}
