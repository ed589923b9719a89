package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/character-validator/internal/clients/dnd5e"
	"github.com/KirkDiggler/character-validator/internal/config"
	"github.com/KirkDiggler/character-validator/internal/repositories/characters"
	"github.com/KirkDiggler/character-validator/internal/services"
)

// app is what a command needs after configuration has been applied
type app struct {
	provider *services.Provider
	close    func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	providerConfig := &services.ProviderConfig{
		AssetDir:        cfg.Assets.Dir,
		AssetCacheTTL:   cfg.Assets.CacheTTL,
		StrictAbilities: cfg.Sheet.StrictAbilities,
	}

	if cfg.DND5E.Enabled {
		dndClient, dndErr := dnd5e.New(&dnd5e.Config{
			HttpClient: &http.Client{
				Timeout: cfg.DND5E.Timeout,
			},
		})
		if dndErr != nil {
			return nil, dndErr
		}
		providerConfig.DNDClient = dndClient
	}

	closeFn := func() {}

	if cfg.Redis.Enabled() {
		redisClient := connectRedis(ctx, cfg.Redis.URL)
		if redisClient != nil {
			providerConfig.RedisClient = redisClient
			providerConfig.CharacterRepository = characters.NewRedis(redisClient)
			closeFn = func() {
				if closeErr := redisClient.Close(); closeErr != nil {
					log.Printf("Failed to close Redis connection: %v", closeErr)
				}
			}
		}
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		closeFn()
		return nil, err
	}

	return &app{
		provider: provider,
		close:    closeFn,
	}, nil
}

// connectRedis returns nil when Redis cannot be used; callers fall back to
// in-memory storage
func connectRedis(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory repositories")
		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		_ = client.Close()
		return nil
	}

	return client
}
