package parser

import "wordtower/internal/models"

// Stats summarises a parse run.
type Stats struct {
	Total        int
	SingleWords  int
	Phrases      int
	WithPhonetic int
	WithRoot     int
	Roots        int
	ByGrade      map[string]int
}

// Statistics aggregates counts over parsed entries.
func Statistics(entries []models.WordEntry) Stats {
	stats := Stats{ByGrade: make(map[string]int)}
	roots := make(map[string]struct{})

	for _, e := range entries {
		stats.Total++
		if e.IsPhrase {
			stats.Phrases++
		} else {
			stats.SingleWords++
		}
		if e.Phonetic != "" {
			stats.WithPhonetic++
		}
		if e.Root != "" {
			stats.WithRoot++
			roots[e.Root] = struct{}{}
		}
		if e.Grade != "" {
			stats.ByGrade[e.Grade]++
		}
	}
	stats.Roots = len(roots)

	return stats
}
