package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/idaccess/identity-service/internal/api/metrics"
	"github.com/idaccess/identity-service/internal/core/domain"
	"github.com/idaccess/identity-service/internal/core/ports"
)

const roleCacheTTL = 24 * time.Hour

// RoleCache is a read-through cache over a RoleStore. Roles are create-only
// in this service, so a cached entry can never go stale; creates write
// through. Cache faults degrade to the backing store, never fail the call.
// Key format: role:<name>
type RoleCache struct {
	store  ports.RoleStore
	client *redis.Client
	log    zerolog.Logger
}

func NewRoleCache(store ports.RoleStore, client *redis.Client, log zerolog.Logger) *RoleCache {
	return &RoleCache{store: store, client: client, log: log}
}

func (c *RoleCache) Exists(ctx context.Context, name string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(name)).Result()
	if err != nil {
		c.log.Warn().Err(err).Str("role", name).Msg("role cache check failed, falling through")
	} else if n > 0 {
		metrics.RoleCacheTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.RoleCacheTotal.WithLabelValues("miss").Inc()
	return c.store.Exists(ctx, name)
}

func (c *RoleCache) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	payload, err := c.client.Get(ctx, c.key(name)).Result()
	if err == nil {
		var role domain.Role
		if jsonErr := json.Unmarshal([]byte(payload), &role); jsonErr == nil {
			metrics.RoleCacheTotal.WithLabelValues("hit").Inc()
			return &role, nil
		}
		c.log.Warn().Str("role", name).Msg("corrupt role cache entry, falling through")
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("role", name).Msg("role cache read failed, falling through")
	}
	metrics.RoleCacheTotal.WithLabelValues("miss").Inc()

	role, err := c.store.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	c.put(ctx, role)
	return role, nil
}

func (c *RoleCache) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	created, err := c.store.Create(ctx, role)
	if err != nil {
		return nil, err
	}
	c.put(ctx, created)
	return created, nil
}

func (c *RoleCache) put(ctx context.Context, role *domain.Role) {
	payload, err := json.Marshal(role)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(role.Name), payload, roleCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("role", role.Name).Msg("failed to set role cache key")
	}
}

func (c *RoleCache) key(name string) string {
	return fmt.Sprintf("role:%s", name)
}
