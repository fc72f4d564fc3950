package graph

import (
	"context"
	"fmt"
)

// Uniqueness constraints for every natural key in the schema. Creating a
// constraint also creates its backing index.
var constraints = []string{
	"CREATE CONSTRAINT word_unique IF NOT EXISTS FOR (w:Word) REQUIRE w.word IS UNIQUE",
	"CREATE CONSTRAINT grade_unique IF NOT EXISTS FOR (g:Grade) REQUIRE g.name IS UNIQUE",
	"CREATE CONSTRAINT root_unique IF NOT EXISTS FOR (r:Root) REQUIRE r.name IS UNIQUE",
	"CREATE CONSTRAINT user_unique IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE",
}

// EnsureConstraints creates the schema constraints if they do not exist.
func (c *Client) EnsureConstraints(ctx context.Context) error {
	for _, stmt := range constraints {
		if err := c.RunAutocommit(ctx, stmt, nil); err != nil {
			return fmt.Errorf("failed to create constraint: %w", err)
		}
	}
	return nil
}
