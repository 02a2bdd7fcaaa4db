package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

const favoritesKey = "favorites:pairs"

// FavoritePair is a saved currency pair. Base/target order is significant:
// USD/EUR and EUR/USD are distinct pairs.
type FavoritePair struct {
	Base   string
	Target string
}

// FavoritesRepository defines storage operations for favorite currency pairs.
type FavoritesRepository interface {
	List(ctx context.Context) ([]FavoritePair, error)
	Add(ctx context.Context, pair FavoritePair) error
	Remove(ctx context.Context, pair FavoritePair) (bool, error)
}

// RedisFavoritesRepository stores favorite pairs as members of a Redis set.
type RedisFavoritesRepository struct {
	rdb *redis.Client
}

// NewRedisFavoritesRepository creates a new RedisFavoritesRepository.
func NewRedisFavoritesRepository(rdb *redis.Client) FavoritesRepository {
	return &RedisFavoritesRepository{rdb: rdb}
}

func memberFor(pair FavoritePair) string {
	return pair.Base + "/" + pair.Target
}

// List returns all favorite pairs in sorted order.
func (r *RedisFavoritesRepository) List(ctx context.Context) ([]FavoritePair, error) {
	members, err := r.rdb.SMembers(ctx, favoritesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	sort.Strings(members)

	pairs := make([]FavoritePair, 0, len(members))
	for _, m := range members {
		base, target, ok := strings.Cut(m, "/")
		if !ok {
			continue
		}
		pairs = append(pairs, FavoritePair{Base: base, Target: target})
	}
	return pairs, nil
}

// Add stores the pair. Adding an existing pair is a no-op.
func (r *RedisFavoritesRepository) Add(ctx context.Context, pair FavoritePair) error {
	if err := r.rdb.SAdd(ctx, favoritesKey, memberFor(pair)).Err(); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes the pair, reporting whether it was present.
func (r *RedisFavoritesRepository) Remove(ctx context.Context, pair FavoritePair) (bool, error) {
	removed, err := r.rdb.SRem(ctx, favoritesKey, memberFor(pair)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return removed > 0, nil
}
