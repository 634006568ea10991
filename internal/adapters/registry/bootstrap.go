package registry

import (
	"context"
	"net/http"

	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

// SourceFactory builds a registry-flavored source over a source identifier,
// sharing the command's transport handle.
type SourceFactory func(id domain.SourceID, httpClient *http.Client) ports.Source

// Configuration reads the persisted registry configuration: index override
// and auth token, both optional.
func Configuration(cfg ports.ConfigStore) domain.RegistryConfig {
	var regCfg domain.RegistryConfig
	if index, ok := cfg.GetString("registry.index"); ok {
		regCfg.Index = index
	}
	if token, ok := cfg.GetString("registry.token"); ok {
		regCfg.Token = token
	}
	return regCfg
}

// Bootstrap turns resolved configuration into a live client bound to a
// specific registry source identity and API host. The effective token is
// explicit-argument-else-config; the effective index is
// explicit-argument-else-config-else-built-in-default.
func Bootstrap(ctx context.Context, cfg ports.ConfigStore, newSource SourceFactory, token, index string, offline bool) (*Client, domain.SourceID, error) {
	regCfg := Configuration(cfg)

	effectiveToken, _ := firstOf(
		explicit(token),
		explicit(regCfg.Token),
	)
	effectiveIndex, _ := firstOf(
		explicit(index),
		explicit(regCfg.Index),
		explicit(DefaultIndex),
	)

	sid, err := domain.ParseIndexURL(effectiveIndex)
	if err != nil {
		return nil, domain.SourceID{}, err
	}

	httpClient, err := NewHTTPClient(ResolveHTTPSettings(cfg, offline))
	if err != nil {
		return nil, domain.SourceID{}, err
	}

	src := newSource(sid, httpClient)
	if err := src.Update(ctx); err != nil {
		updateErr := zerr.Wrap(err, "failed to update registry "+effectiveIndex)
		return nil, domain.SourceID{}, updateErr
	}

	srcCfg, err := src.Config()
	if err != nil {
		return nil, domain.SourceID{}, zerr.Wrap(err, "failed to read registry configuration")
	}

	return NewClient(srcCfg.API, effectiveToken, httpClient), sid, nil
}

// explicit adapts a plain value to a resolution candidate: set when non-empty.
func explicit(value string) func() (string, bool) {
	return func() (string, bool) { return value, value != "" }
}
