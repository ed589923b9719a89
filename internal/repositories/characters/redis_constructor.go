package characters

import (
	"github.com/KirkDiggler/character-validator/internal/uuid"
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis-backed character repository with random ids
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
}
