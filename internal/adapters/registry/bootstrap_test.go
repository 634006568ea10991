package registry_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pakt/internal/adapters/registry"
	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/pakt/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fakeSource struct {
	updateErr error
	cfg       ports.SourceConfig
	cfgErr    error
	updated   bool
}

func (f *fakeSource) Download(_ context.Context, _ domain.PackageID) (*domain.Package, error) {
	return nil, domain.ErrPackageNotFound
}

func (f *fakeSource) Update(_ context.Context) error {
	f.updated = true
	return f.updateErr
}

func (f *fakeSource) Config() (ports.SourceConfig, error) {
	return f.cfg, f.cfgErr
}

func configStoreWith(t *testing.T, values map[string]string) *mocks.MockConfigStore {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := mocks.NewMockConfigStore(ctrl)
	cfg.EXPECT().GetString(gomock.Any()).DoAndReturn(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}).AnyTimes()
	cfg.EXPECT().GetInt(gomock.Any()).Return(int64(0), false).AnyTimes()
	return cfg
}

func TestBootstrap(t *testing.T) {
	t.Run("explicit values win over config", func(t *testing.T) {
		cfg := configStoreWith(t, map[string]string{
			"registry.index": "https://config.example.com",
			"registry.token": "config-token",
		})

		src := &fakeSource{cfg: ports.SourceConfig{API: "https://api.explicit.example.com"}}
		var gotID domain.SourceID
		factory := func(id domain.SourceID, _ *http.Client) ports.Source {
			gotID = id
			return src
		}

		client, sid, err := registry.Bootstrap(context.Background(), cfg, factory,
			"explicit-token", "https://explicit.example.com", false)
		require.NoError(t, err)
		assert.True(t, src.updated)
		assert.Equal(t, "https://explicit.example.com", sid.URL)
		assert.Equal(t, sid, gotID)
		require.NotNil(t, client)
	})

	t.Run("config values fill in when no flags given", func(t *testing.T) {
		cfg := configStoreWith(t, map[string]string{
			"registry.index": "https://config.example.com",
		})

		src := &fakeSource{cfg: ports.SourceConfig{API: "https://api.config.example.com"}}
		factory := func(_ domain.SourceID, _ *http.Client) ports.Source { return src }

		_, sid, err := registry.Bootstrap(context.Background(), cfg, factory, "", "", false)
		require.NoError(t, err)
		assert.Equal(t, "https://config.example.com", sid.URL)
	})

	t.Run("falls back to the built-in index", func(t *testing.T) {
		cfg := configStoreWith(t, nil)

		src := &fakeSource{cfg: ports.SourceConfig{API: "https://api.pakt.dev"}}
		factory := func(_ domain.SourceID, _ *http.Client) ports.Source { return src }

		_, sid, err := registry.Bootstrap(context.Background(), cfg, factory, "", "", false)
		require.NoError(t, err)
		assert.Equal(t, registry.DefaultIndex, sid.URL)
	})

	t.Run("invalid index URL", func(t *testing.T) {
		cfg := configStoreWith(t, nil)
		factory := func(_ domain.SourceID, _ *http.Client) ports.Source {
			t.Fatal("source must not be constructed for a bad index")
			return nil
		}

		_, _, err := registry.Bootstrap(context.Background(), cfg, factory, "", "not a url", false)
		require.ErrorIs(t, err, domain.ErrInvalidIndexURL)
	})

	t.Run("offline forbids any network setup", func(t *testing.T) {
		cfg := configStoreWith(t, nil)
		factory := func(_ domain.SourceID, _ *http.Client) ports.Source {
			t.Fatal("source must not be constructed while offline")
			return nil
		}

		_, _, err := registry.Bootstrap(context.Background(), cfg, factory, "", "", true)
		require.ErrorIs(t, err, domain.ErrNetworkDisabled)
	})

	t.Run("update failure names the index", func(t *testing.T) {
		cfg := configStoreWith(t, nil)
		src := &fakeSource{updateErr: zerr.New("index fetch failed")}
		factory := func(_ domain.SourceID, _ *http.Client) ports.Source { return src }

		_, _, err := registry.Bootstrap(context.Background(), cfg, factory, "", "", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update registry "+registry.DefaultIndex)
	})
}
