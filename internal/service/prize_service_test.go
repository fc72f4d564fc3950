package service

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"wordtower/internal/models"
)

func TestDrawWeightedDistribution(t *testing.T) {
	prizes := []models.Prize{
		{Name: "a", Weight: 10},
		{Name: "b", Weight: 10},
		{Name: "c", Weight: 80},
	}

	rng := rand.New(rand.NewSource(42))
	counts := make(map[string]int)
	draws := 10000

	for i := 0; i < draws; i++ {
		prize, err := drawWeighted(prizes, rng.Intn)
		if err != nil {
			t.Fatalf("drawWeighted() error: %v", err)
		}
		counts[prize.Name]++
	}

	got := float64(counts["c"]) / float64(draws)
	if math.Abs(got-0.80) > 0.03 {
		t.Errorf("prize c frequency = %.3f, want within 0.03 of 0.80", got)
	}
	if counts["a"] == 0 || counts["b"] == 0 {
		t.Errorf("low-weight prizes never drawn: %v", counts)
	}
}

func TestDrawWeightedEmptyPool(t *testing.T) {
	if _, err := drawWeighted(nil, rand.Intn); !errors.Is(err, ErrNoPrizes) {
		t.Errorf("drawWeighted(nil) error = %v, want ErrNoPrizes", err)
	}
}

func TestDrawWeightedSkipsNonPositiveWeights(t *testing.T) {
	prizes := []models.Prize{
		{Name: "zero", Weight: 0},
		{Name: "negative", Weight: -5},
		{Name: "only", Weight: 1},
	}

	for i := 0; i < 100; i++ {
		prize, err := drawWeighted(prizes, rand.Intn)
		if err != nil {
			t.Fatalf("drawWeighted() error: %v", err)
		}
		if prize.Name != "only" {
			t.Fatalf("drew %q, want %q", prize.Name, "only")
		}
	}
}

func TestDrawWeightedAllZeroWeights(t *testing.T) {
	prizes := []models.Prize{{Name: "a", Weight: 0}}
	if _, err := drawWeighted(prizes, rand.Intn); !errors.Is(err, ErrNoPrizes) {
		t.Errorf("error = %v, want ErrNoPrizes", err)
	}
}

func TestDrawWeightedBoundaries(t *testing.T) {
	prizes := []models.Prize{
		{Name: "a", Weight: 3},
		{Name: "b", Weight: 7},
	}

	tests := []struct {
		roll int
		want string
	}{
		{0, "a"},
		{2, "a"},
		{3, "b"},
		{9, "b"},
	}

	for _, tt := range tests {
		prize, err := drawWeighted(prizes, func(int) int { return tt.roll })
		if err != nil {
			t.Fatalf("drawWeighted() error: %v", err)
		}
		if prize.Name != tt.want {
			t.Errorf("roll %d drew %q, want %q", tt.roll, prize.Name, tt.want)
		}
	}
}
