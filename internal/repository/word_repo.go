package repository

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"wordtower/internal/graph"
	"wordtower/internal/models"
)

// WordRepository runs read queries against the word graph.
type WordRepository struct {
	client *graph.Client
}

// NewWordRepository creates a new word repository
func NewWordRepository(client *graph.Client) *WordRepository {
	return &WordRepository{client: client}
}

// WordsForFloor samples up to limit non-phrase words from the grades
// mapped to the given floor. ORDER BY rand() gives a uniform unordered
// sample with no bias toward insertion order.
func (r *WordRepository) WordsForFloor(ctx context.Context, floor, limit int) ([]models.WordEntry, error) {
	query := `
MATCH (w:Word)-[:BELONGS_TO]->(g:Grade)
WHERE g.name IN $grades AND w.is_phrase = false
RETURN w.word AS word, w.phonetic AS phonetic,
       w.definition AS definition, w.pos AS pos,
       w.page AS page, w.difficulty AS difficulty,
       w.is_phrase AS is_phrase, w.root AS root, g.name AS grade
ORDER BY rand()
LIMIT $limit
`
	params := map[string]any{
		"grades": models.GradesForFloor(floor),
		"limit":  limit,
	}

	result, err := r.client.Read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		words := make([]models.WordEntry, 0, len(records))
		for _, rec := range records {
			words = append(words, scanWord(rec))
		}
		return words, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.WordEntry), nil
}

// RandomDefinitions returns up to count distinct definitions drawn at
// random from the corpus, excluding the correct one and empty values.
func (r *WordRepository) RandomDefinitions(ctx context.Context, correct string, count int) ([]string, error) {
	query := `
MATCH (w:Word)
WHERE w.definition <> $correct AND w.definition IS NOT NULL AND w.definition <> ''
RETURN DISTINCT w.definition AS definition
ORDER BY rand()
LIMIT $count
`
	params := map[string]any{"correct": correct, "count": count}

	result, err := r.client.Read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		definitions := make([]string, 0, len(records))
		for _, rec := range records {
			definitions = append(definitions, recordString(rec, "definition"))
		}
		return definitions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}

// WordsByRoot returns every word carrying the given root.
func (r *WordRepository) WordsByRoot(ctx context.Context, root string) ([]models.WordEntry, error) {
	query := `
MATCH (w:Word)-[:HAS_ROOT]->(r:Root {name: $root})
RETURN w.word AS word, w.phonetic AS phonetic,
       w.definition AS definition, w.pos AS pos,
       w.page AS page, w.difficulty AS difficulty,
       w.is_phrase AS is_phrase, w.root AS root, '' AS grade
ORDER BY w.word
`
	result, err := r.client.Read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"root": root})
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		words := make([]models.WordEntry, 0, len(records))
		for _, rec := range records {
			words = append(words, scanWord(rec))
		}
		return words, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.WordEntry), nil
}

// RootCatalog lists roots shared by at least two words, ordered by member
// count descending then by name so ties stay stable within one query.
func (r *WordRepository) RootCatalog(ctx context.Context) ([]models.RootGroup, error) {
	query := `
MATCH (r:Root)<-[:HAS_ROOT]-(w:Word)
WITH r, count(w) AS member_count
WHERE member_count >= 2
RETURN r.name AS root, member_count
ORDER BY member_count DESC, r.name
`
	result, err := r.client.Read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		groups := make([]models.RootGroup, 0, len(records))
		for _, rec := range records {
			groups = append(groups, models.RootGroup{
				Root:        recordString(rec, "root"),
				MemberCount: recordInt64(rec, "member_count"),
			})
		}
		return groups, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.RootGroup), nil
}

// Stats returns corpus totals and the per-grade word distribution.
func (r *WordRepository) Stats(ctx context.Context) (models.CorpusStats, error) {
	query := `
MATCH (w:Word)
WITH count(w) AS total_words
OPTIONAL MATCH (g:Grade)<-[:BELONGS_TO]-(w2:Word)
WITH total_words, g.name AS grade, count(w2) AS count
RETURN total_words, grade, count
ORDER BY count DESC
`
	result, err := r.client.Read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		stats := models.CorpusStats{}
		for _, rec := range records {
			stats.TotalWords = recordInt64(rec, "total_words")
			if grade := recordString(rec, "grade"); grade != "" {
				stats.ByGrade = append(stats.ByGrade, models.GradeCount{
					Grade: grade,
					Count: recordInt64(rec, "count"),
				})
			}
		}
		return stats, nil
	})
	if err != nil {
		return models.CorpusStats{}, err
	}
	return result.(models.CorpusStats), nil
}

func scanWord(rec *neo4j.Record) models.WordEntry {
	return models.WordEntry{
		Word:       recordString(rec, "word"),
		Phonetic:   recordString(rec, "phonetic"),
		POS:        recordString(rec, "pos"),
		Definition: recordString(rec, "definition"),
		Page:       recordString(rec, "page"),
		Grade:      recordString(rec, "grade"),
		Difficulty: recordInt(rec, "difficulty"),
		IsPhrase:   recordBool(rec, "is_phrase"),
		Root:       recordString(rec, "root"),
	}
}
