package services

import (
	"log"
	"time"

	"github.com/KirkDiggler/character-validator/internal/clients/dnd5e"
	domainsheet "github.com/KirkDiggler/character-validator/internal/domain/sheet"
	"github.com/KirkDiggler/character-validator/internal/repositories/characters"
	"github.com/KirkDiggler/character-validator/internal/resolvers"
	sheetService "github.com/KirkDiggler/character-validator/internal/services/sheet"
	"github.com/redis/go-redis/v9"
)

// Provider holds all service instances
type Provider struct {
	SheetService        sheetService.Service
	CharacterRepository characters.Repository
	Resolver            domainsheet.AssetResolver
}

// ProviderConfig holds configuration for creating services.
// Every field is optional.
type ProviderConfig struct {
	// DNDClient adds the dnd5e api to the resolver chain
	DNDClient dnd5e.Client

	// AssetDir adds a directory of asset documents ahead of the api
	AssetDir string

	// RedisClient caches resolved assets; it does not choose the repository
	RedisClient   redis.UniversalClient
	AssetCacheTTL time.Duration

	// Resolver replaces the resolver chain built from the fields above
	Resolver domainsheet.AssetResolver

	CharacterRepository characters.Repository
	StrictAbilities     bool
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	resolver := cfg.Resolver
	if resolver == nil {
		var err error
		resolver, err = buildResolver(cfg)
		if err != nil {
			return nil, err
		}
	}

	svc := sheetService.NewService(&sheetService.ServiceConfig{
		Repository:      charRepo,
		Resolver:        resolver,
		StrictAbilities: cfg.StrictAbilities,
	})

	return &Provider{
		SheetService:        svc,
		CharacterRepository: charRepo,
		Resolver:            resolver,
	}, nil
}

// buildResolver chains the directory ahead of the api. With neither
// configured every proficiency resolves to its own id.
func buildResolver(cfg *ProviderConfig) (domainsheet.AssetResolver, error) {
	var chain []domainsheet.AssetResolver

	if cfg.AssetDir != "" {
		dir, err := resolvers.NewDirectory(&resolvers.DirectoryConfig{Root: cfg.AssetDir})
		if err != nil {
			return nil, err
		}
		log.Printf("Resolving assets from %s", cfg.AssetDir)
		chain = append(chain, dir)
	}

	if cfg.DNDClient != nil {
		api, err := resolvers.NewAPI(&resolvers.APIConfig{Client: cfg.DNDClient})
		if err != nil {
			return nil, err
		}
		log.Println("Resolving assets from the dnd5e api")
		chain = append(chain, api)
	}

	var resolver domainsheet.AssetResolver
	if len(chain) == 0 {
		log.Println("No asset sources configured, echoing asset ids")
		resolver = resolvers.NewEcho()
	} else {
		resolver = resolvers.NewChain(chain...)
	}

	if cfg.RedisClient == nil {
		return resolver, nil
	}

	return resolvers.NewCache(&resolvers.CacheConfig{
		Client: cfg.RedisClient,
		Next:   resolver,
		TTL:    cfg.AssetCacheTTL,
	})
}
