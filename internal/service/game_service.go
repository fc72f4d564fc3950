package service

import (
	"context"
	"math/rand"

	"wordtower/internal/logger"
	"wordtower/internal/models"
	"wordtower/internal/repository"
)

// DefaultOptionCount is the option-set size of a quiz question: the
// correct definition plus three distractors.
const DefaultOptionCount = 4

// GameService serves quiz content from the word graph. Store failures at
// serve time are logged and degrade to empty results so the game can show
// "no data available" instead of crashing.
type GameService struct {
	words *repository.WordRepository
	log   *logger.Logger
}

// NewGameService creates a new game service
func NewGameService(words *repository.WordRepository, log *logger.Logger) *GameService {
	return &GameService{words: words, log: log.With("component", "game")}
}

// WordsForFloor samples up to limit non-phrase words for a tower floor.
func (s *GameService) WordsForFloor(ctx context.Context, floor, limit int) []models.WordEntry {
	words, err := s.words.WordsForFloor(ctx, floor, limit)
	if err != nil {
		s.log.Warn("floor word query failed", "floor", floor, "error", err)
		return nil
	}
	return words
}

// Distractors returns up to count distinct wrong-answer definitions for
// the given correct definition.
func (s *GameService) Distractors(ctx context.Context, correct string, count int) []string {
	definitions, err := s.words.RandomDefinitions(ctx, correct, count)
	if err != nil {
		s.log.Warn("distractor query failed", "error", err)
		return nil
	}
	return definitions
}

// RootCatalog lists roots with at least two member words.
func (s *GameService) RootCatalog(ctx context.Context) []models.RootGroup {
	groups, err := s.words.RootCatalog(ctx)
	if err != nil {
		s.log.Warn("root catalog query failed", "error", err)
		return nil
	}
	return groups
}

// WordsByRoot returns the words sharing one root.
func (s *GameService) WordsByRoot(ctx context.Context, root string) []models.WordEntry {
	words, err := s.words.WordsByRoot(ctx, root)
	if err != nil {
		s.log.Warn("root word query failed", "root", root, "error", err)
		return nil
	}
	return words
}

// Stats returns corpus totals for the dashboard.
func (s *GameService) Stats(ctx context.Context) models.CorpusStats {
	stats, err := s.words.Stats(ctx)
	if err != nil {
		s.log.Warn("stats query failed", "error", err)
		return models.CorpusStats{}
	}
	return stats
}

// BuildQuiz samples floor words and builds one question per word that has
// a definition. Every question gets a freshly generated option set.
func (s *GameService) BuildQuiz(ctx context.Context, floor, limit int) []models.Question {
	words := s.WordsForFloor(ctx, floor, limit)

	questions := make([]models.Question, 0, len(words))
	for _, w := range words {
		if w.Definition == "" {
			continue
		}
		distractors := s.Distractors(ctx, w.Definition, DefaultOptionCount-1)
		questions = append(questions, newQuestion(w, distractors))
	}
	return questions
}

// newQuestion shuffles the correct definition into the distractor list and
// records where it landed.
func newQuestion(w models.WordEntry, distractors []string) models.Question {
	options := make([]string, 0, len(distractors)+1)
	options = append(options, w.Definition)
	options = append(options, distractors...)

	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	answer := 0
	for i, opt := range options {
		if opt == w.Definition {
			answer = i
			break
		}
	}

	return models.Question{Word: w, Options: options, Answer: answer}
}
