package models

// Question is one presented quiz item: a sampled word with a fixed option
// set. Options are generated fresh for every presented word and never
// reused across words; Answer is the index of the correct definition.
type Question struct {
	Word    WordEntry `json:"word"`
	Options []string  `json:"options"`
	Answer  int       `json:"answer"`
}
