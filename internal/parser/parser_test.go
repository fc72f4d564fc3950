package parser

import (
	"strings"
	"testing"

	"wordtower/internal/logger"
	"wordtower/internal/models"
)

func TestParseLine(t *testing.T) {
	p := New(logger.NewNop())

	tests := []struct {
		name string
		line string
		want models.WordEntry
	}{
		{
			name: "word with phonetic pos page and grade",
			line: "apple /ˈæpl/ n. 苹果 p.1 (来自: 7年级上册)",
			want: models.WordEntry{
				Word:       "apple",
				Phonetic:   "/ˈæpl/",
				POS:        "n.",
				Definition: "苹果",
				Page:       "1",
				Grade:      "7年级上册",
				Difficulty: 1,
			},
		},
		{
			name: "phrase without phonetic",
			line: "give up v. 放弃 p.12",
			want: models.WordEntry{
				Word:       "give up",
				POS:        "v.",
				Definition: "放弃",
				Page:       "12",
				Difficulty: 2,
				IsPhrase:   true,
			},
		},
		{
			name: "phrase without pos cut at first CJK character",
			line: "look forward to 期待 p.33 (来自: 8年级下册)",
			want: models.WordEntry{
				Word:       "look forward to",
				Definition: "期待",
				Page:       "33",
				Grade:      "8年级下册",
				Difficulty: 2,
				IsPhrase:   true,
			},
		},
		{
			name: "alternative phonetic kept whole",
			line: "record /ˈrekɔːd/, /rɪˈkɔːd/ n. 记录 p.5 (来自: 9年级)",
			want: models.WordEntry{
				Word:       "record",
				Phonetic:   "/ˈrekɔːd/, /rɪˈkɔːd/",
				POS:        "n.",
				Definition: "记录",
				Page:       "5",
				Grade:      "9年级",
				Difficulty: 3,
			},
		},
		{
			name: "adjective tag",
			line: "active /ˈæktɪv/ adj. 积极的 p.88 (来自: 8年级上册)",
			want: models.WordEntry{
				Word:       "active",
				Phonetic:   "/ˈæktɪv/",
				POS:        "adj.",
				Definition: "积极的",
				Page:       "88",
				Grade:      "8年级上册",
				Difficulty: 2,
			},
		},
		{
			name: "definition runs to grade annotation when page missing",
			line: "import v. 进口 (来自: 9年级)",
			want: models.WordEntry{
				Word:       "import",
				POS:        "v.",
				Definition: "进口",
				Grade:      "9年级",
				Difficulty: 3,
			},
		},
		{
			name: "unmapped grade defaults to difficulty 2",
			line: "export /ˈekspɔːt/ v. 出口 p.7 (来自: 高一)",
			want: models.WordEntry{
				Word:       "export",
				Phonetic:   "/ˈekspɔːt/",
				POS:        "v.",
				Definition: "出口",
				Page:       "7",
				Grade:      "高一",
				Difficulty: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ParseLine(tt.line)
			if !ok {
				t.Fatalf("ParseLine(%q) rejected the line", tt.line)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLineRejected(t *testing.T) {
	p := New(logger.NewNop())

	tests := []struct {
		name string
		line string
	}{
		{name: "line starting with CJK text", line: "你好 p.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if entry, ok := p.ParseLine(tt.line); ok {
				t.Errorf("ParseLine(%q) = %+v, want rejection", tt.line, entry)
			}
		})
	}
}

func TestParseLineDefinitionNeedsTerminator(t *testing.T) {
	// The definition rule reads up to a page marker or grade annotation;
	// a line with neither yields an empty definition.
	p := New(logger.NewNop())

	entry, ok := p.ParseLine("apple /ˈæpl/ n. 苹果")
	if !ok {
		t.Fatal("line was rejected")
	}
	if entry.Definition != "" {
		t.Errorf("Definition = %q, want empty", entry.Definition)
	}
	if entry.Word != "apple" {
		t.Errorf("Word = %q, want %q", entry.Word, "apple")
	}
}

func TestParseLinePhraseOnAnyWhitespace(t *testing.T) {
	// Phrase classification keys on any whitespace in the headword, not
	// just a literal space.
	p := New(logger.NewNop())

	entry, ok := p.ParseLine("give\tup v. 放弃 p.12")
	if !ok {
		t.Fatal("line was rejected")
	}
	if !entry.IsPhrase {
		t.Errorf("IsPhrase = false for %q, want true", entry.Word)
	}
}

func TestExtractHeadwordStripsResidualSlash(t *testing.T) {
	got := extractHeadword("report /rɪˈpɔːt/ n. 报告 p.4", "/rɪˈpɔːt/")
	if got != "report" {
		t.Errorf("extractHeadword() = %q, want %q", got, "report")
	}
}

func TestParseLines(t *testing.T) {
	input := strings.Join([]string{
		"apple /ˈæpl/ n. 苹果 p.1 (来自: 7年级上册)",
		"",
		"give up v. 放弃 p.12",
		"你好 p.1",
	}, "\n")

	p := New(logger.NewNop())
	entries, skipped, err := p.ParseLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLines() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if entries[0].Word != "apple" || entries[1].Word != "give up" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestStatistics(t *testing.T) {
	entries := []models.WordEntry{
		{Word: "apple", Phonetic: "/ˈæpl/", Grade: "7年级上册"},
		{Word: "give up", IsPhrase: true, Grade: "7年级上册"},
		{Word: "act", Root: "act", Grade: "9年级"},
		{Word: "action", Root: "act"},
	}

	stats := Statistics(entries)
	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.Phrases != 1 || stats.SingleWords != 3 {
		t.Errorf("Phrases/SingleWords = %d/%d, want 1/3", stats.Phrases, stats.SingleWords)
	}
	if stats.WithPhonetic != 1 {
		t.Errorf("WithPhonetic = %d, want 1", stats.WithPhonetic)
	}
	if stats.WithRoot != 2 || stats.Roots != 1 {
		t.Errorf("WithRoot/Roots = %d/%d, want 2/1", stats.WithRoot, stats.Roots)
	}
	if stats.ByGrade["7年级上册"] != 2 {
		t.Errorf("ByGrade[7年级上册] = %d, want 2", stats.ByGrade["7年级上册"])
	}
}
