package service

import (
	"context"

	"converterservice/internal/repository"
)

// RecentHistory returns recorded conversions, newest first, up to the
// configured cap.
func (s *ConverterService) RecentHistory(ctx context.Context) ([]repository.Conversion, error) {
	records, err := s.history.Recent(ctx, s.maxHistory)
	if err != nil {
		s.log.Errorw("Failed to read history", "error", err)
		return nil, ErrInternal
	}
	return records, nil
}

// ClearHistory removes all recorded conversions.
func (s *ConverterService) ClearHistory(ctx context.Context) error {
	if err := s.history.Clear(ctx); err != nil {
		s.log.Errorw("Failed to clear history", "error", err)
		return ErrInternal
	}
	s.log.Infow("History cleared")
	return nil
}
