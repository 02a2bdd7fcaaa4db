package service

import (
	"context"

	"converterservice/internal/repository"
)

// ListFavorites returns all saved currency pairs.
func (s *ConverterService) ListFavorites(ctx context.Context) ([]repository.FavoritePair, error) {
	pairs, err := s.favorites.List(ctx)
	if err != nil {
		s.log.Errorw("Failed to list favorites", "error", err)
		return nil, ErrInternal
	}
	return pairs, nil
}

// AddFavorite saves a currency pair. Saving an existing pair is a no-op.
func (s *ConverterService) AddFavorite(ctx context.Context, base, target string) error {
	base, target, err := s.normalizePair(base, target)
	if err != nil {
		return err
	}
	if err := s.favorites.Add(ctx, repository.FavoritePair{Base: base, Target: target}); err != nil {
		s.log.Errorw("Failed to add favorite", "base", base, "target", target, "error", err)
		return ErrInternal
	}
	s.log.Infow("Favorite added", "base", base, "target", target)
	return nil
}

// RemoveFavorite deletes a saved pair, returning ErrNotFound when absent.
func (s *ConverterService) RemoveFavorite(ctx context.Context, base, target string) error {
	base, target, err := s.normalizePair(base, target)
	if err != nil {
		return err
	}
	removed, err := s.favorites.Remove(ctx, repository.FavoritePair{Base: base, Target: target})
	if err != nil {
		s.log.Errorw("Failed to remove favorite", "base", base, "target", target, "error", err)
		return ErrInternal
	}
	if !removed {
		return ErrNotFound
	}
	s.log.Infow("Favorite removed", "base", base, "target", target)
	return nil
}
