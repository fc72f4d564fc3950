package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"wordtower/internal/logger"
	"wordtower/internal/models"
)

const upsertWordsQuery = `
UNWIND $words AS w
MERGE (word:Word {word: w.word})
SET word.phonetic = w.phonetic,
    word.pos = w.pos,
    word.definition = w.definition,
    word.page = w.page,
    word.difficulty = w.difficulty,
    word.is_phrase = w.is_phrase,
    word.root = w.root,
    word.mastered_count = coalesce(word.mastered_count, 0),
    word.wrong_count = coalesce(word.wrong_count, 0)
`

const gradeEdgesQuery = `
UNWIND $words AS w
MATCH (word:Word {word: w.word})
MATCH (grade:Grade {name: w.grade})
MERGE (word)-[:BELONGS_TO]->(grade)
`

const rootEdgesQuery = `
UNWIND $words AS w
MATCH (word:Word {word: w.word})
MATCH (root:Root {name: w.root})
MERGE (word)-[:HAS_ROOT]->(root)
`

// Canonical pair ordering by headword so every unordered pair gets exactly
// one SAME_ROOT edge regardless of how often the derivation re-runs.
const sameRootQuery = `
MATCH (w1:Word)-[:HAS_ROOT]->(r:Root)<-[:HAS_ROOT]-(w2:Word)
WHERE w1.word < w2.word
MERGE (w1)-[:SAME_ROOT {root: r.name}]->(w2)
`

const floorsQuery = `
UNWIND range(1, 9) AS floor_num
MERGE (f:Floor {number: floor_num})
SET f.difficulty = CASE
    WHEN floor_num <= 3 THEN 1
    WHEN floor_num <= 5 THEN 2
    WHEN floor_num <= 7 THEN 3
    ELSE 4
END
`

// Loader bulk-upserts parsed entries into the graph. Every statement uses
// MERGE on the natural key, so re-running an import leaves the graph
// unchanged.
type Loader struct {
	client    *Client
	log       *logger.Logger
	batchSize int
}

// NewLoader creates a loader. batchSize bounds transaction payloads; a
// non-positive value falls back to 100.
func NewLoader(client *Client, log *logger.Logger, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Loader{client: client, log: log.With("component", "loader"), batchSize: batchSize}
}

// Load runs the full phased import. Phases are ordered: nodes must exist
// before their edges, and HAS_ROOT edges before SAME_ROOT derivation. Any
// store error aborts the run naming the failed phase.
func (l *Loader) Load(ctx context.Context, entries []models.WordEntry) error {
	phases := []struct {
		name string
		run  func(context.Context, []models.WordEntry) error
	}{
		{"constraints", func(ctx context.Context, _ []models.WordEntry) error { return l.client.EnsureConstraints(ctx) }},
		{"grades", func(ctx context.Context, _ []models.WordEntry) error { return l.loadGrades(ctx) }},
		{"roots", l.loadRoots},
		{"words", l.loadWords},
		{"grade relations", l.loadGradeEdges},
		{"root relations", l.loadRootEdges},
		{"same-root relations", func(ctx context.Context, _ []models.WordEntry) error { return l.deriveSameRoot(ctx) }},
		{"floors", func(ctx context.Context, _ []models.WordEntry) error { return l.loadFloors(ctx) }},
	}

	for _, phase := range phases {
		if err := phase.run(ctx, entries); err != nil {
			return fmt.Errorf("import phase %q failed: %w", phase.name, err)
		}
		l.log.Debug("import phase complete", "phase", phase.name)
	}

	l.log.Info("import complete", "entries", len(entries))
	return nil
}

func (l *Loader) loadGrades(ctx context.Context) error {
	rows := make([]map[string]any, 0, len(models.DefaultGrades))
	for _, g := range models.DefaultGrades {
		rows = append(rows, map[string]any{
			"name":        g.Name,
			"level":       g.Level,
			"floor_start": g.FloorStart,
			"floor_end":   g.FloorEnd,
		})
	}

	return l.client.Run(ctx, `
UNWIND $grades AS grade
MERGE (g:Grade {name: grade.name})
SET g.level = grade.level,
    g.floor_start = grade.floor_start,
    g.floor_end = grade.floor_end
`, map[string]any{"grades": rows})
}

func (l *Loader) loadRoots(ctx context.Context, entries []models.WordEntry) error {
	seen := make(map[string]struct{})
	var rows []map[string]any
	for _, e := range entries {
		if e.Root == "" {
			continue
		}
		if _, ok := seen[e.Root]; ok {
			continue
		}
		seen[e.Root] = struct{}{}
		rows = append(rows, map[string]any{"name": e.Root})
	}
	if len(rows) == 0 {
		return nil
	}

	return l.client.Run(ctx, `
UNWIND $roots AS root
MERGE (r:Root {name: root.name})
`, map[string]any{"roots": rows})
}

func (l *Loader) loadWords(ctx context.Context, entries []models.WordEntry) error {
	return l.runBatched(ctx, upsertWordsQuery, entries)
}

func (l *Loader) loadGradeEdges(ctx context.Context, entries []models.WordEntry) error {
	withGrade := make([]models.WordEntry, 0, len(entries))
	for _, e := range entries {
		if e.Grade != "" {
			withGrade = append(withGrade, e)
		}
	}
	return l.runBatched(ctx, gradeEdgesQuery, withGrade)
}

func (l *Loader) loadRootEdges(ctx context.Context, entries []models.WordEntry) error {
	var withRoot []models.WordEntry
	for _, e := range entries {
		if e.Root != "" {
			withRoot = append(withRoot, e)
		}
	}
	return l.runBatched(ctx, rootEdgesQuery, withRoot)
}

func (l *Loader) deriveSameRoot(ctx context.Context) error {
	return l.client.Run(ctx, sameRootQuery, nil)
}

func (l *Loader) loadFloors(ctx context.Context) error {
	return l.client.Run(ctx, floorsQuery, nil)
}

// runBatched issues query once per batch of entries. Batches commute
// because every statement merges by key, so partial completion is safe to
// re-run.
func (l *Loader) runBatched(ctx context.Context, query string, entries []models.WordEntry) error {
	for start := 0; start < len(entries); start += l.batchSize {
		end := start + l.batchSize
		if end > len(entries) {
			end = len(entries)
		}

		rows := make([]map[string]any, 0, end-start)
		for _, e := range entries[start:end] {
			rows = append(rows, entryRow(e))
		}

		if err := l.client.Run(ctx, query, map[string]any{"words": rows}); err != nil {
			return err
		}
		l.log.Debug("batch committed", "done", end, "total", len(entries))
	}
	return nil
}

func entryRow(e models.WordEntry) map[string]any {
	return map[string]any{
		"word":       e.Word,
		"phonetic":   e.Phonetic,
		"pos":        e.POS,
		"definition": e.Definition,
		"page":       e.Page,
		"grade":      e.Grade,
		"difficulty": e.Difficulty,
		"is_phrase":  e.IsPhrase,
		"root":       e.Root,
	}
}

// Clear removes every node and relationship. Destructive; only the
// importer's explicit -clear flag reaches it.
func (l *Loader) Clear(ctx context.Context) error {
	return l.client.Run(ctx, "MATCH (n) DETACH DELETE n", nil)
}

// Stats counts the nodes and relationships the import produces.
func (l *Loader) Stats(ctx context.Context) (models.GraphStats, error) {
	var stats models.GraphStats
	counts := map[string]*int64{
		"MATCH (w:Word) RETURN count(w) AS count":              &stats.Words,
		"MATCH (g:Grade) RETURN count(g) AS count":             &stats.Grades,
		"MATCH (r:Root) RETURN count(r) AS count":              &stats.Roots,
		"MATCH ()-[r:BELONGS_TO]->() RETURN count(r) AS count": &stats.BelongsTo,
		"MATCH ()-[r:HAS_ROOT]->() RETURN count(r) AS count":   &stats.HasRoot,
		"MATCH ()-[r:SAME_ROOT]->() RETURN count(r) AS count":  &stats.SameRoot,
	}

	for query, dest := range counts {
		n, err := l.countQuery(ctx, query)
		if err != nil {
			return models.GraphStats{}, err
		}
		*dest = n
	}
	return stats, nil
}

func (l *Loader) countQuery(ctx context.Context, query string) (int64, error) {
	result, err := l.client.Read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		count, _ := record.Get("count")
		return count, nil
	})
	if err != nil {
		return 0, err
	}
	n, _ := result.(int64)
	return n, nil
}
