package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"wordtower/internal/config"
	"wordtower/internal/graph"
	"wordtower/internal/logger"
	"wordtower/internal/models"
	"wordtower/internal/parser"
	"wordtower/internal/roots"
)

// loadFixture clears the graph and imports a small corpus: three act-family
// words, one aud word and one phrase.
func loadFixture(t *testing.T, client *graph.Client) {
	t.Helper()

	lines := []string{
		"act /ækt/ v. 行动 p.10 (来自: 7年级上册)",
		"action /ˈækʃn/ n. 行为 p.11 (来自: 7年级上册)",
		"active /ˈæktɪv/ adj. 积极的 p.12 (来自: 8年级上册)",
		"audio /ˈɔːdiəʊ/ n. 音频 p.20 (来自: 9年级)",
		"give up v. 放弃 p.30 (来自: 7年级下册)",
	}

	p := parser.New(logger.NewNop())
	var entries []models.WordEntry
	for _, line := range lines {
		entry, ok := p.ParseLine(line)
		if !ok {
			t.Fatalf("fixture line rejected: %q", line)
		}
		entries = append(entries, entry)
	}
	roots.NewIdentifier(nil).Identify(entries)

	ctx := context.Background()
	loader := graph.NewLoader(client, logger.NewNop(), 100)
	if err := loader.Clear(ctx); err != nil {
		t.Fatalf("failed to clear graph: %v", err)
	}
	if err := loader.Load(ctx, entries); err != nil {
		t.Fatalf("load failed: %v", err)
	}
}

func integrationClient(t *testing.T) *graph.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("NEO4J_URI") == "" {
		t.Skip("NEO4J_URI not set")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := graph.NewClient(ctx, cfg, logger.NewNop())
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { client.Close(context.Background()) })

	return client
}

func TestWordsByRootCarriesRoot(t *testing.T) {
	client := integrationClient(t)
	loadFixture(t, client)
	ctx := context.Background()
	repo := NewWordRepository(client)

	words, err := repo.WordsByRoot(ctx, "act")
	if err != nil {
		t.Fatalf("WordsByRoot() error: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("got %d words, want 3", len(words))
	}
	for _, w := range words {
		if w.Root != "act" {
			t.Errorf("word %q has root %q, want %q", w.Word, w.Root, "act")
		}
	}
}

func TestRandomDefinitionsExcludesCorrect(t *testing.T) {
	client := integrationClient(t)
	loadFixture(t, client)
	ctx := context.Background()
	repo := NewWordRepository(client)

	const correct = "行动"
	for i := 0; i < 10; i++ {
		definitions, err := repo.RandomDefinitions(ctx, correct, 3)
		if err != nil {
			t.Fatalf("RandomDefinitions() error: %v", err)
		}
		if len(definitions) == 0 {
			t.Fatal("got no distractors from a populated corpus")
		}

		seen := make(map[string]bool)
		for _, d := range definitions {
			if d == correct {
				t.Fatalf("distractors include the correct definition %q", correct)
			}
			if d == "" {
				t.Fatal("distractors include an empty definition")
			}
			if seen[d] {
				t.Fatalf("duplicate distractor %q", d)
			}
			seen[d] = true
		}
	}
}

func TestUserLifecycle(t *testing.T) {
	client := integrationClient(t)
	ctx := context.Background()
	repo := NewUserRepository(client)

	const id = "lifecycle-test-user"
	t.Cleanup(func() { _ = repo.Delete(context.Background(), id) })

	user := models.User{
		ID:             id,
		TotalQuestions: 20,
		CorrectAnswers: 15,
		Score:          500,
		CurrentFloor:   4,
		MasteredCount:  10,
		WrongCount:     5,
	}
	if err := repo.Upsert(ctx, user); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Score != 500 || got.CurrentFloor != 4 {
		t.Errorf("Get() = %+v, want score 500 floor 4", got)
	}
	if got.LastActive.IsZero() {
		t.Error("LastActive not stamped")
	}

	// Reset keeps the node but zeroes progress.
	if err := repo.Reset(ctx, id); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	got, err = repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() after reset error: %v", err)
	}
	if got.Score != 0 || got.CurrentFloor != 1 || got.TotalQuestions != 0 {
		t.Errorf("after reset = %+v, want zeroed counters on floor 1", got)
	}

	if err := repo.SetParentPassword(ctx, id, "secret"); err != nil {
		t.Fatalf("SetParentPassword() error: %v", err)
	}
	password, err := repo.ParentPassword(ctx, id)
	if err != nil {
		t.Fatalf("ParentPassword() error: %v", err)
	}
	if password != "secret" {
		t.Errorf("ParentPassword() = %q, want %q", password, "secret")
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := repo.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}
