package models

// WordEntry is one parsed vocabulary record: a headword plus the metadata
// recovered from its source line and the root assigned afterwards.
type WordEntry struct {
	Word       string `json:"word"`
	Phonetic   string `json:"phonetic"`
	POS        string `json:"pos"`
	Definition string `json:"definition"`
	Page       string `json:"page"`
	Grade      string `json:"grade"`
	Difficulty int    `json:"difficulty"`
	IsPhrase   bool   `json:"isPhrase"`
	Root       string `json:"root"`
}

// RootGroup is one row of the root catalog: a root shared by at least two
// words and how many words carry it.
type RootGroup struct {
	Root        string `json:"root"`
	MemberCount int64  `json:"memberCount"`
}

// GradeCount is the number of words belonging to one grade.
type GradeCount struct {
	Grade string `json:"grade"`
	Count int64  `json:"count"`
}

// CorpusStats summarises the loaded word corpus.
type CorpusStats struct {
	TotalWords int64        `json:"totalWords"`
	ByGrade    []GradeCount `json:"byGrade"`
}

// GraphStats counts the nodes and relationships produced by an import run.
type GraphStats struct {
	Words     int64 `json:"words"`
	Grades    int64 `json:"grades"`
	Roots     int64 `json:"roots"`
	BelongsTo int64 `json:"belongsTo"`
	HasRoot   int64 `json:"hasRoot"`
	SameRoot  int64 `json:"sameRoot"`
}
