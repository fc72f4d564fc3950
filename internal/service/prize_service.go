package service

import (
	"context"
	"errors"
	"math/rand"

	"wordtower/internal/logger"
	"wordtower/internal/models"
	"wordtower/internal/repository"
)

// ErrNoPrizes is returned when a draw is attempted over an empty pool.
var ErrNoPrizes = errors.New("no prizes available")

// PrizeService handles prize pool configuration and the weighted draw.
type PrizeService struct {
	prizes *repository.PrizeRepository
	log    *logger.Logger
}

// NewPrizeService creates a new prize service
func NewPrizeService(prizes *repository.PrizeRepository, log *logger.Logger) *PrizeService {
	return &PrizeService{prizes: prizes, log: log.With("component", "prizes")}
}

// GetPrizes returns the configured prizes of a type, falling back to the
// built-in default list when none are configured or the store is down.
func (s *PrizeService) GetPrizes(ctx context.Context, prizeType models.PrizeType) []models.Prize {
	prizes, err := s.prizes.ByType(ctx, prizeType)
	if err != nil {
		s.log.Warn("prize query failed", "type", prizeType, "error", err)
		return models.DefaultPrizes(prizeType)
	}
	if len(prizes) == 0 {
		return models.DefaultPrizes(prizeType)
	}
	return prizes
}

// ReplacePrizes atomically swaps the configured pool of one type.
func (s *PrizeService) ReplacePrizes(ctx context.Context, prizeType models.PrizeType, prizes []models.Prize) error {
	return s.prizes.Replace(ctx, prizeType, prizes)
}

// Draw picks one prize with probability proportional to its weight.
func (s *PrizeService) Draw(prizes []models.Prize) (models.Prize, error) {
	return drawWeighted(prizes, rand.Intn)
}

// drawWeighted walks the cumulative weight distribution with a single
// uniform roll. Non-positive weights are excluded from the draw.
func drawWeighted(prizes []models.Prize, intn func(int) int) (models.Prize, error) {
	total := 0
	for _, p := range prizes {
		if p.Weight > 0 {
			total += p.Weight
		}
	}
	if total == 0 {
		return models.Prize{}, ErrNoPrizes
	}

	roll := intn(total)
	cumulative := 0
	for _, p := range prizes {
		if p.Weight <= 0 {
			continue
		}
		cumulative += p.Weight
		if roll < cumulative {
			return p, nil
		}
	}

	// Unreachable while roll < total; kept so the compiler sees a return.
	return models.Prize{}, ErrNoPrizes
}
