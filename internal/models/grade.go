package models

// Grade is one tier of the source curriculum. Floors FloorStart..FloorEnd
// of the quiz tower draw their words from this grade.
type Grade struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	FloorStart int    `json:"floorStart"`
	FloorEnd   int    `json:"floorEnd"`
}

// DefaultGrades is the fixed five-tier grade table of the source corpus.
var DefaultGrades = []Grade{
	{Name: "7年级上册", Level: 1, FloorStart: 1, FloorEnd: 2},
	{Name: "7年级下册", Level: 2, FloorStart: 2, FloorEnd: 3},
	{Name: "8年级上册", Level: 3, FloorStart: 4, FloorEnd: 5},
	{Name: "8年级下册", Level: 4, FloorStart: 5, FloorEnd: 6},
	{Name: "9年级", Level: 5, FloorStart: 7, FloorEnd: 9},
}

// gradeDifficulty maps a grade name to its word difficulty (1-4).
var gradeDifficulty = map[string]int{
	"7年级上册": 1,
	"7年级下册": 1,
	"8年级上册": 2,
	"8年级下册": 2,
	"9年级":   3,
}

// DifficultyFor returns the difficulty for a grade name. Unmapped grades
// default to 2.
func DifficultyFor(grade string) int {
	if d, ok := gradeDifficulty[grade]; ok {
		return d
	}
	return 2
}

// floorGrades maps a tower floor (1-9) to the grades it draws words from.
var floorGrades = map[int][]string{
	1: {"7年级上册"},
	2: {"7年级上册", "7年级下册"},
	3: {"7年级下册"},
	4: {"8年级上册"},
	5: {"8年级上册", "8年级下册"},
	6: {"8年级下册"},
	7: {"9年级"},
	8: {"9年级"},
	9: {"9年级"},
}

// GradesForFloor returns the grade names a floor samples from. Unknown
// floors fall back to the lowest grade.
func GradesForFloor(floor int) []string {
	if grades, ok := floorGrades[floor]; ok {
		return grades
	}
	return []string{"7年级上册"}
}
