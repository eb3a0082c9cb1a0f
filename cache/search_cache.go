package store_cache

import (
	"context"
	"fmt"
	"hash/crc32"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/config"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/google/uuid"
)

// TTL tiers. Text queries are long-tail and rarely repeat; the bare
// unfiltered list is the most reusable page of the whole store.
const (
	TTLSearch     = 60 * time.Second
	TTLFiltered   = 300 * time.Second
	TTLUnfiltered = 600 * time.Second
)

// TagGlobal is attached to every cached search page, so FlushAll can drop
// everything without scanning the keyspace.
const TagGlobal = "products:all"

// TagSetTTL bounds the tag index itself. Refreshed on every Put, and kept
// above the longest entry TTL so invalidation always sees live keys; without
// it the long tail of query-hash keys would accumulate in the sets forever.
const TagSetTTL = 2 * TTLUnfiltered

const keyPrefix = "store:products:"
const tagPrefix = "store:tag:"

// ─────────────────────────────────────────────────────────────
// Key / tag / TTL derivation (pure functions of the filter state)
// ─────────────────────────────────────────────────────────────

// SearchKey derives a deterministic, human-legible cache key. Every id list
// is validated and sorted before joining, so two filter states the engine
// treats identically (same ids in any order, malformed ids dropped) always
// collide to the same key.
func SearchKey(f models.FilterState) string {
	segments := make([]string, 0, 8)

	if ids := validIDs(f.Types); len(ids) > 0 {
		segments = append(segments, "type-"+joinSorted(ids))
	}
	if ids := validIDs(f.Categories); len(ids) > 0 {
		segments = append(segments, "cat-"+joinSorted(ids))
	}

	termIDs := make(map[string][]string, len(f.Terms))
	codes := make([]string, 0, len(f.Terms))
	for code, ids := range f.Terms {
		if valid := validIDs(ids); len(valid) > 0 {
			termIDs[code] = valid
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	for _, code := range codes {
		segments = append(segments, code+"-"+joinSorted(termIDs[code]))
	}

	if f.PriceMin != nil || f.PriceMax != nil {
		segments = append(segments, fmt.Sprintf("price-%s-%s", int64Seg(f.PriceMin), int64Seg(f.PriceMax)))
	}

	rangeCodes := make([]string, 0, len(f.Ranges))
	for code, bound := range f.Ranges {
		if bound.Min != nil || bound.Max != nil {
			rangeCodes = append(rangeCodes, code)
		}
	}
	sort.Strings(rangeCodes)
	for _, code := range rangeCodes {
		bound := f.Ranges[code]
		seg := code
		if code == "alcohol" {
			seg = "alc"
		}
		segments = append(segments, fmt.Sprintf("%s-%s-%s", seg, floatSeg(bound.Min), floatSeg(bound.Max)))
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		segments = append(segments, fmt.Sprintf("q-%08x", crc32.ChecksumIEEE([]byte(q))))
	}

	if len(segments) == 0 {
		segments = append(segments, "all")
	}

	sortToken := f.Sort
	if sortToken == "" {
		sortToken = "default"
	}
	segments = append(segments,
		"sort-"+sortToken,
		fmt.Sprintf("page-%d", f.Page),
		fmt.Sprintf("per-%d", f.PerPage),
	)

	return keyPrefix + strings.Join(segments, ":")
}

// SearchTags derives the invalidation tags: the global tag plus one tag per
// concrete filter value, so a catalog edit only has to flush the caches
// that actually reference the edited entity. Malformed ids never filter
// anything, so they never tag anything either.
func SearchTags(f models.FilterState) []string {
	tags := []string{TagGlobal}
	for _, id := range validIDs(f.Types) {
		tags = append(tags, "type:"+id)
	}
	for _, id := range validIDs(f.Categories) {
		tags = append(tags, "category:"+id)
	}

	codes := make([]string, 0, len(f.Terms))
	for code := range f.Terms {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		for _, id := range validIDs(f.Terms[code]) {
			tags = append(tags, code+":"+id)
		}
	}
	return tags
}

// SearchTTL picks the TTL tier for a filter state.
func SearchTTL(f models.FilterState) time.Duration {
	switch {
	case f.HasSearch():
		return TTLSearch
	case f.HasFilters():
		return TTLFiltered
	default:
		return TTLUnfiltered
	}
}

// validIDs mirrors the filter applier: only well-formed UUIDs reach the
// database, so only those may shape keys and tags.
func validIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if uuid.Validate(id) == nil {
			out = append(out, id)
		}
	}
	return out
}

func joinSorted(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func int64Seg(v *int64) string {
	if v == nil {
		return "x"
	}
	return fmt.Sprintf("%d", *v)
}

func floatSeg(v *float64) string {
	if v == nil {
		return "x"
	}
	return fmt.Sprintf("%g", *v)
}

// ─────────────────────────────────────────────────────────────
// Redis wiring (best-effort; a cache error never fails a request)
// ─────────────────────────────────────────────────────────────

// Get returns the cached payload for a key, or (nil, false) on miss or
// on any Redis error.
func Get(ctx context.Context, key string) ([]byte, bool) {
	if config.RedisClient == nil {
		return nil, false
	}
	val, err := config.RedisClient.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Put stores a payload under the key with the given TTL and registers the
// key in each tag set.
func Put(ctx context.Context, key string, payload []byte, ttl time.Duration, tags []string) {
	if config.RedisClient == nil {
		return
	}
	pipe := config.RedisClient.Pipeline()
	pipe.Set(ctx, key, payload, ttl)
	for _, tag := range tags {
		setKey := tagPrefix + tag
		pipe.SAdd(ctx, setKey, key)
		pipe.Expire(ctx, setKey, TagSetTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("search cache put failed for %s: %v", key, err)
	}
}

// InvalidateTag drops every cached page registered under a tag.
func InvalidateTag(ctx context.Context, tag string) error {
	if config.RedisClient == nil {
		return nil
	}
	setKey := tagPrefix + tag
	keys, err := config.RedisClient.SMembers(ctx, setKey).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		if err := config.RedisClient.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return config.RedisClient.Del(ctx, setKey).Err()
}

// Targeted invalidation helpers for write-side callers.

func InvalidateType(ctx context.Context, typeID string) error {
	return InvalidateTag(ctx, "type:"+typeID)
}

func InvalidateCategory(ctx context.Context, categoryID string) error {
	return InvalidateTag(ctx, "category:"+categoryID)
}

func InvalidateTerm(ctx context.Context, groupCode, termID string) error {
	return InvalidateTag(ctx, groupCode+":"+termID)
}

// FlushAll drops every cached search page.
func FlushAll(ctx context.Context) error {
	return InvalidateTag(ctx, TagGlobal)
}
