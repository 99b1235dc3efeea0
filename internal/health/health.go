// Package health checks the backing services of the API.
package health

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// CheckFunc reports an unhealthy dependency with a non-nil error.
type CheckFunc func(ctx context.Context) error

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type namedCheck struct {
	name string
	fn   CheckFunc
}

// Checker runs all registered checks concurrently under one timeout.
type Checker struct {
	timeout time.Duration
	checks  []namedCheck
}

// NewChecker creates a Checker whose runs are bounded by timeout.
func NewChecker(timeout time.Duration) *Checker {
	return &Checker{timeout: timeout}
}

// Add registers a named check.
func (c *Checker) Add(name string, fn CheckFunc) *Checker {
	c.checks = append(c.checks, namedCheck{name: name, fn: fn})
	return c
}

// Check returns the first failing check, or nil when all pass.
func (c *Checker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for _, check := range c.checks {
		check := check
		g.Go(func() error {
			if err := check.fn(ctx); err != nil {
				return fmt.Errorf("%s: %w", check.name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// DB pings the relational store.
func DB(db Pinger) CheckFunc {
	return db.PingContext
}

// Redis pings the cache server.
func Redis(client *redis.Client) CheckFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
