package service

import (
	"testing"

	"wordtower/internal/models"
)

func TestNewQuestion(t *testing.T) {
	word := models.WordEntry{Word: "apple", Definition: "苹果"}
	distractors := []string{"香蕉", "橘子", "葡萄"}

	for i := 0; i < 50; i++ {
		q := newQuestion(word, distractors)

		if len(q.Options) != 4 {
			t.Fatalf("got %d options, want 4", len(q.Options))
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			t.Fatalf("answer index %d out of range", q.Answer)
		}
		if q.Options[q.Answer] != word.Definition {
			t.Fatalf("Options[%d] = %q, want %q", q.Answer, q.Options[q.Answer], word.Definition)
		}

		correct := 0
		seen := make(map[string]bool)
		for _, opt := range q.Options {
			if opt == word.Definition {
				correct++
			}
			if seen[opt] {
				t.Fatalf("duplicate option %q", opt)
			}
			seen[opt] = true
		}
		if correct != 1 {
			t.Fatalf("correct definition appears %d times, want 1", correct)
		}
	}
}

func TestNewQuestionFewDistractors(t *testing.T) {
	// The corpus may lack enough distinct definitions; the option set just
	// comes out smaller.
	word := models.WordEntry{Word: "apple", Definition: "苹果"}

	q := newQuestion(word, []string{"香蕉"})
	if len(q.Options) != 2 {
		t.Fatalf("got %d options, want 2", len(q.Options))
	}
	if q.Options[q.Answer] != word.Definition {
		t.Errorf("Options[%d] = %q, want %q", q.Answer, q.Options[q.Answer], word.Definition)
	}
}
