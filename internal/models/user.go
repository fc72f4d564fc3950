package models

import "time"

// User is a learner record keyed by a learner-chosen handle. Counters are
// owned by the caller issuing the update; the store only persists them.
type User struct {
	ID             string    `json:"id"`
	TotalQuestions int       `json:"totalQuestions"`
	CorrectAnswers int       `json:"correctAnswers"`
	Score          int       `json:"score"`
	CurrentFloor   int       `json:"currentFloor"`
	MasteredCount  int       `json:"masteredCount"`
	WrongCount     int       `json:"wrongCount"`
	LastActive     time.Time `json:"lastActive"`
}
