package repository

import (
	"context"
	"errors"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"wordtower/internal/graph"
	"wordtower/internal/models"
)

// ErrNotFound is returned when a user id has no node in the graph.
var ErrNotFound = errors.New("user not found")

const userFields = `
u.id AS id,
u.total_questions AS total_questions,
u.correct_answers AS correct_answers,
u.score AS score,
u.current_floor AS current_floor,
u.mastered_count AS mastered_count,
u.wrong_count AS wrong_count,
u.last_active AS last_active
`

// UserRepository handles learner record operations.
type UserRepository struct {
	client *graph.Client
}

// NewUserRepository creates a new user repository
func NewUserRepository(client *graph.Client) *UserRepository {
	return &UserRepository{client: client}
}

// Upsert merges the user by id, overwriting counters and stamping
// last_active with the store clock.
func (r *UserRepository) Upsert(ctx context.Context, user models.User) error {
	query := `
MERGE (u:User {id: $id})
SET u.last_active = datetime(),
    u.total_questions = $total_questions,
    u.correct_answers = $correct_answers,
    u.score = $score,
    u.current_floor = $current_floor,
    u.mastered_count = $mastered_count,
    u.wrong_count = $wrong_count
`
	return r.client.Run(ctx, query, map[string]any{
		"id":              user.ID,
		"total_questions": user.TotalQuestions,
		"correct_answers": user.CorrectAnswers,
		"score":           user.Score,
		"current_floor":   user.CurrentFloor,
		"mastered_count":  user.MasteredCount,
		"wrong_count":     user.WrongCount,
	})
}

// Get returns one user or ErrNotFound.
func (r *UserRepository) Get(ctx context.Context, id string) (models.User, error) {
	query := `MATCH (u:User {id: $id}) RETURN ` + userFields

	result, err := r.client.Read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, ErrNotFound
		}
		return scanUser(records[0]), nil
	})
	if err != nil {
		return models.User{}, err
	}
	return result.(models.User), nil
}

// List returns every user ordered by score descending.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `MATCH (u:User) RETURN ` + userFields + ` ORDER BY u.score DESC`
	return r.listQuery(ctx, query, nil)
}

// Leaderboard returns the top limit users by score.
func (r *UserRepository) Leaderboard(ctx context.Context, limit int) ([]models.User, error) {
	query := `
MATCH (u:User)
WHERE u.score IS NOT NULL
RETURN ` + userFields + `
ORDER BY u.score DESC
LIMIT $limit
`
	return r.listQuery(ctx, query, map[string]any{"limit": limit})
}

// Delete removes the user node and all its relationships.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.client.Run(ctx, `MATCH (u:User {id: $id}) DETACH DELETE u`, map[string]any{"id": id})
}

// DeleteAll removes every user node.
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	return r.client.Run(ctx, `MATCH (u:User) DETACH DELETE u`, nil)
}

// Reset zeroes the user's counters and puts them back on floor 1. The node
// itself is kept.
func (r *UserRepository) Reset(ctx context.Context, id string) error {
	query := `
MATCH (u:User {id: $id})
SET u.total_questions = 0,
    u.correct_answers = 0,
    u.score = 0,
    u.current_floor = 1,
    u.mastered_count = 0,
    u.wrong_count = 0,
    u.last_active = datetime()
`
	return r.client.Run(ctx, query, map[string]any{"id": id})
}

// SetParentPassword stores the parent password for a learner, creating the
// user node if needed.
func (r *UserRepository) SetParentPassword(ctx context.Context, id, password string) error {
	query := `
MERGE (u:User {id: $id})
SET u.parent_password = $password
`
	return r.client.Run(ctx, query, map[string]any{"id": id, "password": password})
}

// ParentPassword returns the stored parent password, or empty when the
// user does not exist or no password was set.
func (r *UserRepository) ParentPassword(ctx context.Context, id string) (string, error) {
	query := `MATCH (u:User {id: $id}) RETURN u.parent_password AS password`

	result, err := r.client.Read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return "", nil
		}
		return recordString(records[0], "password"), nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (r *UserRepository) listQuery(ctx context.Context, query string, params map[string]any) ([]models.User, error) {
	result, err := r.client.Read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		users := make([]models.User, 0, len(records))
		for _, rec := range records {
			users = append(users, scanUser(rec))
		}
		return users, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.User), nil
}

func scanUser(rec *neo4j.Record) models.User {
	return models.User{
		ID:             recordString(rec, "id"),
		TotalQuestions: recordInt(rec, "total_questions"),
		CorrectAnswers: recordInt(rec, "correct_answers"),
		Score:          recordInt(rec, "score"),
		CurrentFloor:   recordInt(rec, "current_floor"),
		MasteredCount:  recordInt(rec, "mastered_count"),
		WrongCount:     recordInt(rec, "wrong_count"),
		LastActive:     recordTime(rec, "last_active"),
	}
}
