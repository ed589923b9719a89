package dnd5e

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	internal "github.com/KirkDiggler/character-validator/internal"
	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
)

// The api library does not take a context; the http client timeout bounds
// each call and ctx is only checked before calling out.
type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}

	if cfg.HttpClient == nil {
		return nil, internal.NewMissingParamError("cfg.HttpClient")
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		client: dndClient,
	}, nil
}

func (c *client) GetProficiency(ctx context.Context, key string) (*assets.Asset, error) {
	if key == "" {
		return nil, internal.NewMissingParamError("GetProficiency.key")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response, err := c.client.GetProficiency(key)
	if err != nil {
		return nil, apiError(err, "proficiency", key)
	}

	if response == nil {
		return nil, dnderr.NotFoundf("proficiency '%s' not found in dnd5e api", key)
	}

	return apiProficiencyToAsset(response), nil
}

func (c *client) GetClass(ctx context.Context, key string) (*assets.Asset, error) {
	if key == "" {
		return nil, internal.NewMissingParamError("GetClass.key")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response, err := c.client.GetClass(key)
	if err != nil {
		return nil, apiError(err, "class", key)
	}

	if response == nil {
		return nil, dnderr.NotFoundf("class '%s' not found in dnd5e api", key)
	}

	return apiClassToAsset(response)
}

func (c *client) GetRace(ctx context.Context, key string) (*assets.Asset, error) {
	if key == "" {
		return nil, internal.NewMissingParamError("GetRace.key")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response, err := c.client.GetRace(key)
	if err != nil {
		return nil, apiError(err, "race", key)
	}

	if response == nil {
		return nil, dnderr.NotFoundf("race '%s' not found in dnd5e api", key)
	}

	return apiRaceToAsset(response), nil
}

// apiError maps a dnd5e api failure to an application error. The library
// reports a missing key only through the status code in its error text.
func apiError(err error, kind, key string) error {
	if strings.Contains(err.Error(), "status code: 404") {
		return dnderr.WrapWithCode(err, dnderr.CodeNotFound, fmt.Sprintf("%s '%s' not found in dnd5e api", kind, key)).
			WithMeta("key", key)
	}

	return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, fmt.Sprintf("failed to get %s from dnd5e api", kind)).
		WithMeta("key", key)
}
