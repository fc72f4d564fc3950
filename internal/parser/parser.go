package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"wordtower/internal/logger"
	"wordtower/internal/models"
)

// The extraction rules below run in a fixed order because later fields
// depend on earlier ones: the headword rule branches on whether a phonetic
// was found, and the definition rule branches on whether a POS tag was
// found. Each rule is a standalone function so it can be tested against
// fixture lines on its own.
var (
	gradeRe    = regexp.MustCompile(`\(来自:\s*([^)]+)\)`)
	pageRe     = regexp.MustCompile(`p\.(\S+)`)
	phoneticRe = regexp.MustCompile(`(/[^/]+/(?:,\s*/[^/]+/)?)`)

	// POS tag preceded by whitespace; used to cut the headword off a line
	// that has no phonetic block.
	posBoundaryRe = regexp.MustCompile(`\s+(n\.|v\.|adj\.|adv\.|prep\.|conj\.|pron\.|art\.|num\.)`)
	// POS tag anywhere in the line.
	posRe = regexp.MustCompile(`\b(n\.|v\.|adj\.|adv\.|prep\.|conj\.|pron\.|art\.|num\.)`)

	cjkRe = regexp.MustCompile(`[\x{4e00}-\x{9fff}]`)

	// A slash fragment left inside an extracted headword.
	residualSlashRe = regexp.MustCompile(`\s*/.*`)

	// Definition text terminated by a page marker or grade annotation.
	defAfterPOSRe = regexp.MustCompile(`^\s*(.+?)(?:\s+p\.\S+|\s*\(来自:)`)
	defFromCJKRe  = regexp.MustCompile(`([\x{4e00}-\x{9fff}].+?)(?:\s+p\.\S+|\s*\(来自:)`)
)

// Parser turns raw vocabulary lines into structured entries. Malformed
// lines are skipped with a diagnostic; a parse run never aborts on one
// bad line.
type Parser struct {
	log *logger.Logger
}

// New creates a parser that reports skipped lines through log.
func New(log *logger.Logger) *Parser {
	return &Parser{log: log.With("component", "parser")}
}

// ParseLine extracts one entry from a raw line. The second return value is
// false when the line yields no headword or a rule fails mid-extraction.
func (p *Parser) ParseLine(line string) (entry models.WordEntry, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("line parse failed", "line", truncate(line, 50), "error", fmt.Sprint(r))
			entry, ok = models.WordEntry{}, false
		}
	}()

	grade := extractGrade(line)
	page := extractPage(line)
	phonetic := extractPhonetic(line)
	word := extractHeadword(line, phonetic)
	if word == "" {
		return models.WordEntry{}, false
	}
	pos := extractPOS(line)

	return models.WordEntry{
		Word:       word,
		Phonetic:   phonetic,
		POS:        pos,
		Definition: extractDefinition(line, pos),
		Page:       page,
		Grade:      grade,
		Difficulty: models.DifficultyFor(grade),
		IsPhrase:   strings.ContainsFunc(word, unicode.IsSpace),
	}, true
}

// ParseLines parses every non-blank line from r. It returns the parsed
// entries along with the number of lines that were skipped.
func (p *Parser) ParseLines(r io.Reader) ([]models.WordEntry, int, error) {
	var entries []models.WordEntry
	skipped := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, ok := p.ParseLine(line)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read input: %w", err)
	}

	return entries, skipped, nil
}

// extractGrade finds a (来自: X) annotation.
func extractGrade(line string) string {
	if m := gradeRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractPage finds a p.<token> marker.
func extractPage(line string) string {
	if m := pageRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// extractPhonetic finds a slash-delimited transcription, optionally
// followed by a second alternative.
func extractPhonetic(line string) string {
	if m := phoneticRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// extractHeadword recovers the headword. When a phonetic block exists the
// headword is everything before its opening slash; otherwise the line is
// cut at the first POS tag, then at the first CJK character, then falls
// back to the first whitespace-delimited token.
func extractHeadword(line, phonetic string) string {
	var word string
	if phonetic != "" {
		word = strings.TrimSpace(strings.SplitN(line, "/", 2)[0])
	} else if loc := posBoundaryRe.FindStringIndex(line); loc != nil {
		word = strings.TrimSpace(line[:loc[0]])
	} else if loc := cjkRe.FindStringIndex(line); loc != nil {
		word = strings.TrimSpace(line[:loc[0]])
	} else if fields := strings.Fields(line); len(fields) > 0 {
		word = fields[0]
	}
	return strings.TrimSpace(residualSlashRe.ReplaceAllString(word, ""))
}

// extractPOS finds the first recognized part-of-speech tag in the line.
func extractPOS(line string) string {
	if m := posRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// extractDefinition takes the text after the POS tag, or from the first
// CJK character when there is no tag, up to the next page marker or grade
// annotation. A line with neither marker yields an empty definition.
func extractDefinition(line, pos string) string {
	if pos != "" {
		idx := strings.Index(line, pos)
		if idx < 0 {
			return ""
		}
		remaining := line[idx+len(pos):]
		if m := defAfterPOSRe.FindStringSubmatch(remaining); m != nil {
			return strings.TrimSpace(m[1])
		}
		return ""
	}
	if m := defFromCJKRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
