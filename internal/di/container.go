package di

import (
	"context"

	"github.com/weeztools/weezimport/internal/importer"
	"github.com/weeztools/weezimport/internal/registry"
	"github.com/weeztools/weezimport/internal/weezevent"
	"github.com/weeztools/weezimport/pkg/config"
)

// Container holds all dependencies for one import run.
type Container struct {
	// Infrastructure
	Gateway weezevent.Gateway

	// Registries
	Rates *registry.RateRegistry
	Forms *registry.FormRegistry

	// Pipeline
	Mapper    *importer.Mapper
	Submitter *importer.Submitter
	Importer  *importer.Importer
}

// ContainerConfig contains configuration for building the container.
type ContainerConfig struct {
	Config  *config.Config
	Gateway weezevent.Gateway
	EventID string
}

// NewContainer builds the container. Registry construction performs the
// initial remote listings, so the gateway must already be authenticated.
func NewContainer(ctx context.Context, cfg *ContainerConfig) (*Container, error) {
	c := &Container{
		Gateway: cfg.Gateway,
	}

	rates, err := registry.NewRateRegistry(ctx, c.Gateway, cfg.EventID)
	if err != nil {
		return nil, err
	}
	c.Rates = rates

	forms, err := registry.NewFormRegistry(ctx, c.Gateway, cfg.EventID)
	if err != nil {
		return nil, err
	}
	c.Forms = forms

	c.Mapper = importer.NewMapper(c.Rates, c.Forms, &importer.MapperConfig{
		EventID:      cfg.EventID,
		ChannelID:    cfg.Config.Import.ChannelID,
		FallbackTier: cfg.Config.Import.FallbackTier,
	})
	c.Submitter = importer.NewSubmitter(c.Gateway, &importer.SubmitterConfig{
		BatchSize: cfg.Config.Import.BatchSize,
	})
	c.Importer = importer.NewImporter(c.Mapper, c.Submitter)

	return c, nil
}
