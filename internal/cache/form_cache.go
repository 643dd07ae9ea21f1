package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/monosijkayal/open-form/internal/model"
)

// FormCache handles Redis caching of forms on the public share-read path
type FormCache interface {
	SetByShareID(ctx context.Context, shareID string, form *model.Form) error
	GetByShareID(ctx context.Context, shareID string) (*model.Form, error)
	Invalidate(ctx context.Context, shareID string) error
}

type formCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFormCache creates a new form cache
func NewFormCache(client *redis.Client) FormCache {
	return &formCache{
		client: client,
		ttl:    15 * time.Minute,
	}
}

func (c *formCache) key(shareID string) string {
	return fmt.Sprintf("form:share:%s", shareID)
}

func (c *formCache) SetByShareID(ctx context.Context, shareID string, form *model.Form) error {
	data, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(shareID), data, c.ttl).Err()
}

func (c *formCache) GetByShareID(ctx context.Context, shareID string) (*model.Form, error) {
	data, err := c.client.Get(ctx, c.key(shareID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var form model.Form
	if err := json.Unmarshal([]byte(data), &form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (c *formCache) Invalidate(ctx context.Context, shareID string) error {
	return c.client.Del(ctx, c.key(shareID)).Err()
}

type noopFormCache struct{}

// NewNoopFormCache returns a FormCache that stores nothing. Used where a
// Redis connection is not worth holding, such as the seed tool.
func NewNoopFormCache() FormCache {
	return noopFormCache{}
}

func (noopFormCache) SetByShareID(context.Context, string, *model.Form) error { return nil }

func (noopFormCache) GetByShareID(context.Context, string) (*model.Form, error) { return nil, nil }

func (noopFormCache) Invalidate(context.Context, string) error { return nil }
