package persistence

import "context"

// ConnScope hands out a per-request store connection.
type ConnScope interface {
	Acquire(ctx context.Context) (context.Context, func(), error)
}

// NopScope is used with the in-memory store, which has no connections.
type NopScope struct{}

// Acquire returns ctx unchanged.
func (NopScope) Acquire(ctx context.Context) (context.Context, func(), error) {
	return ctx, func() {}, nil
}

// Scope returns the connection scope matching the configured store.
func (p *Postgres) Scope() ConnScope {
	if p.Enabled() {
		return p
	}
	return NopScope{}
}
