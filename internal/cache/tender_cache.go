package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"tenders/internal/domain/entity"
	"tenders/internal/repository"
)

const generationKey = "tenders:gen"

// Generation identifies the cache epoch a page was looked up in. Invalidate
// moves to a new generation.
type Generation int64

// UnknownGeneration is returned when the epoch could not be read; Set ignores it.
const UnknownGeneration Generation = -1

// TenderCache keeps pages of the public tender listing. Implementations never
// fail the caller; a broken cache behaves like an empty one.
//
// Set must be given the generation returned by the Get that missed, so a page
// read before a write is never stored in the epoch that follows the write.
type TenderCache interface {
	Get(ctx context.Context, filter repository.TenderFilter) ([]entity.Tender, Generation, bool)
	Set(ctx context.Context, gen Generation, filter repository.TenderFilter, tenders []entity.Tender)
	Invalidate(ctx context.Context)
}

type RedisTenderCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisTenderCache(client redis.UniversalClient, ttl time.Duration) *RedisTenderCache {
	return &RedisTenderCache{client: client, ttl: ttl}
}

func (c *RedisTenderCache) Get(ctx context.Context, filter repository.TenderFilter) ([]entity.Tender, Generation, bool) {
	gen, err := c.generation(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("tender cache unavailable")
		return nil, UnknownGeneration, false
	}
	key := entryKey(gen, filter)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("tender cache read failed")
		}
		return nil, gen, false
	}
	var tenders []entity.Tender
	if err := json.Unmarshal(raw, &tenders); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("tender cache entry is corrupt")
		return nil, gen, false
	}
	return tenders, gen, true
}

func (c *RedisTenderCache) Set(ctx context.Context, gen Generation, filter repository.TenderFilter, tenders []entity.Tender) {
	if gen == UnknownGeneration {
		return
	}
	raw, err := json.Marshal(tenders)
	if err != nil {
		log.Warn().Err(err).Msg("tender cache encode failed")
		return
	}
	key := entryKey(gen, filter)
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("tender cache write failed")
	}
}

// Invalidate bumps the generation so every cached page becomes unreachable and
// expires on its own.
func (c *RedisTenderCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		log.Warn().Err(err).Msg("tender cache invalidation failed")
	}
}

func (c *RedisTenderCache) generation(ctx context.Context) (Generation, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return UnknownGeneration, err
	}
	return Generation(gen), nil
}

func entryKey(gen Generation, filter repository.TenderFilter) string {
	return fmt.Sprintf("tenders:list:%d:%s", gen, ListKey(filter))
}

// ListKey renders the filter so that equal filters produce equal keys regardless
// of service type order.
func ListKey(filter repository.TenderFilter) string {
	types := make([]string, len(filter.ServiceTypes))
	for i, t := range filter.ServiceTypes {
		types[i] = string(t)
	}
	sort.Strings(types)
	return fmt.Sprintf("limit=%d:offset=%d:types=%s", filter.Limit, filter.Offset, strings.Join(types, ","))
}

type NopTenderCache struct{}

func (NopTenderCache) Get(context.Context, repository.TenderFilter) ([]entity.Tender, Generation, bool) {
	return nil, UnknownGeneration, false
}

func (NopTenderCache) Set(context.Context, Generation, repository.TenderFilter, []entity.Tender) {}

func (NopTenderCache) Invalidate(context.Context) {}
