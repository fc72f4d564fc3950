package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"wordtower/internal/config"
	"wordtower/internal/logger"
)

// Client owns the pooled Neo4j driver. One client is created at the
// process boundary and passed to every component that touches the store;
// sessions are opened per logical operation and closed on every exit path.
type Client struct {
	Driver   neo4j.DriverWithContext
	Database string
	log      *logger.Logger
}

// NewClient connects to Neo4j and verifies connectivity before returning.
func NewClient(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Client, error) {
	auth := neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, "")
	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, auth, func(c *neo4j.Config) {
		c.MaxConnectionPoolSize = cfg.MaxPoolSize
		c.MaxConnectionLifetime = cfg.ConnectionLifetime
		c.ConnectionAcquisitionTimeout = cfg.AcquisitionTimeout
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("failed to verify neo4j connectivity: %w", err)
	}

	log.Info("neo4j connection established", "uri", cfg.Neo4jURI)

	return &Client{Driver: driver, Database: cfg.Neo4jDatabase, log: log.With("component", "graph")}, nil
}

// Close releases the driver and its connection pool.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return nil
	}
	err := c.Driver.Close(ctx)
	c.Driver = nil
	return err
}

// Read opens a read session, runs work in a managed transaction and closes
// the session.
func (c *Client) Read(ctx context.Context, work neo4j.ManagedTransactionWork) (any, error) {
	session := c.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: c.Database,
	})
	defer session.Close(ctx)

	return session.ExecuteRead(ctx, work)
}

// Write opens a write session, runs work in a managed transaction and
// closes the session.
func (c *Client) Write(ctx context.Context, work neo4j.ManagedTransactionWork) (any, error) {
	session := c.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: c.Database,
	})
	defer session.Close(ctx)

	return session.ExecuteWrite(ctx, work)
}

// Run executes a single write statement and consumes its result.
func (c *Client) Run(ctx context.Context, query string, params map[string]any) error {
	_, err := c.Write(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Consume(ctx)
	})
	return err
}

// RunAutocommit executes one statement in an auto-commit transaction.
// Schema commands cannot run inside explicit transactions, so constraint
// creation goes through here.
func (c *Client) RunAutocommit(ctx context.Context, query string, params map[string]any) error {
	session := c.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: c.Database,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, query, params)
	if err != nil {
		return err
	}
	_, err = res.Consume(ctx)
	return err
}
