package repository

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"wordtower/internal/graph"
	"wordtower/internal/models"
)

// PrizeRepository handles configured lucky-draw prize pools.
type PrizeRepository struct {
	client *graph.Client
}

// NewPrizeRepository creates a new prize repository
func NewPrizeRepository(client *graph.Client) *PrizeRepository {
	return &PrizeRepository{client: client}
}

// ByType returns configured prizes of the given type (or all of them),
// ordered by weight descending. An empty result means nothing is
// configured; defaults are the service's concern.
func (r *PrizeRepository) ByType(ctx context.Context, prizeType models.PrizeType) ([]models.Prize, error) {
	query := `
MATCH (p:Prize {type: $type})
RETURN p.name AS name, p.description AS description, p.weight AS weight, p.type AS type
ORDER BY p.weight DESC
`
	params := map[string]any{"type": string(prizeType)}
	if prizeType == models.PrizeTypeAll {
		query = `
MATCH (p:Prize)
RETURN p.name AS name, p.description AS description, p.weight AS weight, p.type AS type
ORDER BY p.weight DESC
`
		params = nil
	}

	result, err := r.client.Read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		prizes := make([]models.Prize, 0, len(records))
		for _, rec := range records {
			prizes = append(prizes, models.Prize{
				Name:        recordString(rec, "name"),
				Description: recordString(rec, "description"),
				Weight:      recordInt(rec, "weight"),
				Type:        models.PrizeType(recordString(rec, "type")),
			})
		}
		return prizes, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Prize), nil
}

// Replace atomically swaps the configured prizes of one type: the old pool
// is deleted and the new one created inside a single write transaction.
func (r *PrizeRepository) Replace(ctx context.Context, prizeType models.PrizeType, prizes []models.Prize) error {
	rows := make([]map[string]any, 0, len(prizes))
	for _, p := range prizes {
		rows = append(rows, map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"weight":      p.Weight,
		})
	}

	_, err := r.client.Write(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `MATCH (p:Prize {type: $type}) DETACH DELETE p`, map[string]any{"type": string(prizeType)})
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}

		if len(rows) == 0 {
			return nil, nil
		}
		res, err = tx.Run(ctx, `
UNWIND $prizes AS prize
CREATE (p:Prize {name: prize.name, description: prize.description, weight: prize.weight, type: $type})
`, map[string]any{"prizes": rows, "type": string(prizeType)})
		if err != nil {
			return nil, err
		}
		return res.Consume(ctx)
	})
	return err
}
