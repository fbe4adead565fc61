package fetcher

import (
	"context"
	"strings"

	"vaccine-assistant/internal/cache"
	"vaccine-assistant/internal/catalogue"
	"vaccine-assistant/internal/common/logger"
	"vaccine-assistant/internal/common/metrics"
	"vaccine-assistant/internal/knowledge"
	"vaccine-assistant/internal/models"
	"vaccine-assistant/internal/nlp"
)

// placeholderMarker identifies the boilerplate description the catalogue
// wrongly shares across unrelated vaccines.
const placeholderMarker = "Infanrix Hexa"

// Searcher is the part of the catalogue client the fetcher needs.
type Searcher interface {
	SearchVaccines(ctx context.Context, query string) ([]catalogue.Vaccine, error)
}

// Fetcher merges remote catalogue facts with the static knowledge base and
// memoizes non-empty results by normalized name.
type Fetcher struct {
	remote     Searcher
	kb         *knowledge.Base
	normalizer *nlp.Normalizer
	cache      *cache.LRU[string, models.FactBundle]
	log        logger.Logger
}

func New(remote Searcher, kb *knowledge.Base, normalizer *nlp.Normalizer, capacity int, log logger.Logger) (*Fetcher, error) {
	if capacity <= 0 {
		capacity = cache.DefaultCapacity
	}
	c, err := cache.NewLRU[string, models.FactBundle](capacity)
	if err != nil {
		return nil, err
	}
	return &Fetcher{
		remote:     remote,
		kb:         kb,
		normalizer: normalizer,
		cache:      c,
		log:        log,
	}, nil
}

// Fetch never fails. name is expected to be a resolved canonical name; the
// static fallback is keyed by it exactly.
func (f *Fetcher) Fetch(ctx context.Context, name string) models.FactBundle {
	key := f.normalizer.Normalize(name)
	if key == "" {
		return models.FactBundle{}
	}

	if bundle, ok := f.cache.Get(key); ok {
		metrics.FactCacheLookups.WithLabelValues("hit").Inc()
		return bundle
	}
	metrics.FactCacheLookups.WithLabelValues("miss").Inc()

	bundle, source := f.fetch(ctx, name, key)
	metrics.FactSources.WithLabelValues(source).Inc()
	// a cancelled turn must not pin the static fallback
	if !bundle.IsEmpty() && ctx.Err() == nil {
		f.cache.Put(key, bundle)
	}
	return bundle
}

// CacheLen reports the number of memoized bundles.
func (f *Fetcher) CacheLen() int {
	return f.cache.Len()
}

func (f *Fetcher) fetch(ctx context.Context, name, key string) (models.FactBundle, string) {
	candidates, err := f.remote.SearchVaccines(ctx, key)
	if err != nil {
		f.log.WithError(err).Error("catalogue lookup failed, using static facts", map[string]interface{}{
			"vaccine": name,
		})
		return f.static(name)
	}

	for _, v := range candidates {
		if f.normalizer.Normalize(v.Name) != key {
			continue
		}
		return f.fromRemote(name, v), "remote"
	}

	f.log.Debug("no exact catalogue match", map[string]interface{}{
		"vaccine":    name,
		"candidates": len(candidates),
	})
	return f.static(name)
}

func (f *Fetcher) fromRemote(name string, v catalogue.Vaccine) models.FactBundle {
	fact, known := f.kb.Fact(v.Name)
	if !known {
		fact, _ = f.kb.Fact(name)
	}

	description := v.Description
	if strings.Contains(description, placeholderMarker) && v.Name != placeholderMarker {
		description = fact.Description
		if description == "" {
			description = models.Unknown
		}
	}

	origin := v.Origin()
	if origin == "" {
		origin = fact.Origin
	}

	return models.FactBundle{
		Description: description,
		Price:       int64(v.Price),
		Origin:      origin,
		Image:       v.ImgURL,
	}
}

func (f *Fetcher) static(name string) (models.FactBundle, string) {
	fact, ok := f.kb.Fact(name)
	if !ok {
		return models.FactBundle{}, "none"
	}
	return models.FactBundle{
		Description: fact.Description,
		Price:       fact.Price,
		Origin:      fact.Origin,
	}, "static"
}
