package characters

import (
	"context"
	"fmt"
	"sort"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
	"github.com/KirkDiggler/character-validator/internal/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const indexKey = "characters"

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, character *assets.Character) error {
	if err := validateCharacter(character); err != nil {
		return err
	}

	if character.Metadata.ID == "" {
		character.Metadata.ID = r.uuidGenerator.New()
	}
	id := character.Metadata.ID

	data, err := marshalCharacter(character)
	if err != nil {
		return err
	}

	// a concurrent create of the same id loses the SETNX and gets AlreadyExists
	created, err := r.client.SetNX(ctx, r.key(id), string(data), 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	if !created {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", id).
			WithMeta("character_id", id)
	}

	if err := r.client.SAdd(ctx, indexKey, id).Err(); err != nil {
		return fmt.Errorf("failed to index character: %w", err)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*assets.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	return unmarshalCharacter(data)
}

// List retrieves all indexed characters. Index entries whose document is
// gone are skipped.
func (r *redisRepo) List(ctx context.Context) ([]*assets.Character, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}
	sort.Strings(ids)

	found := make([]*assets.Character, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			character, err := r.Get(gctx, id)
			if dnderr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get character %s: %w", id, err)
			}
			found[i] = character
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	characters := make([]*assets.Character, 0, len(found))
	for _, character := range found {
		if character != nil {
			characters = append(characters, character)
		}
	}

	return characters, nil
}

// Update replaces an existing character
func (r *redisRepo) Update(ctx context.Context, character *assets.Character) error {
	if err := validateCharacter(character); err != nil {
		return err
	}

	id := character.Metadata.ID
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists == 0 {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	data, err := marshalCharacter(character)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(id), string(data), 0).Err(); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists == 0 {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, indexKey, id)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}
