package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pakt/cmd/pakt/commands"
	"go.trai.ch/pakt/internal/app"
)

type mockApp struct {
	publishFunc func(ctx context.Context, opts app.PublishOptions) error
	ownersFunc  func(ctx context.Context, opts app.OwnersOptions) error
	yankFunc    func(ctx context.Context, opts app.YankOptions) error
	searchFunc  func(ctx context.Context, opts app.SearchOptions) error
	loginFunc   func(ctx context.Context, token, index string) error
}

func (m *mockApp) Publish(ctx context.Context, opts app.PublishOptions) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) ModifyOwners(ctx context.Context, opts app.OwnersOptions) error {
	if m.ownersFunc != nil {
		return m.ownersFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Yank(ctx context.Context, opts app.YankOptions) error {
	if m.yankFunc != nil {
		return m.yankFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Search(ctx context.Context, opts app.SearchOptions) error {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Login(ctx context.Context, token, index string) error {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, token, index)
	}
	return nil
}

func TestCommands_Publish(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.PublishOptions
		mock := &mockApp{
			publishFunc: func(_ context.Context, opts app.PublishOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"publish", "--token", "tok", "--index", "https://alt.example.com",
			"--dry-run", "--allow-dirty", "--no-verify", "-j", "4", "--offline",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "tok", captured.Token)
		assert.Equal(t, "https://alt.example.com", captured.Index)
		assert.True(t, captured.DryRun)
		assert.True(t, captured.AllowDirty)
		assert.False(t, captured.Verify)
		assert.Equal(t, 4, captured.Jobs)
		assert.True(t, captured.Offline)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			publishFunc: func(_ context.Context, _ app.PublishOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"publish"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Owner(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.OwnersOptions
		mock := &mockApp{
			ownersFunc: func(_ context.Context, opts app.OwnersOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"owner", "left-pad", "-a", "alice", "-a", "bob", "-r", "carol", "-l"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "left-pad", captured.Package)
		assert.Equal(t, []string{"alice", "bob"}, captured.Add)
		assert.Equal(t, []string{"carol"}, captured.Remove)
		assert.True(t, captured.List)
	})

	t.Run("shows usage when nothing requested", func(t *testing.T) {
		mock := &mockApp{
			ownersFunc: func(_ context.Context, _ app.OwnersOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"owner"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Yank(t *testing.T) {
	var captured app.YankOptions
	mock := &mockApp{
		yankFunc: func(_ context.Context, opts app.YankOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"yank", "left-pad", "--vers", "1.0.0", "--undo"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "left-pad", captured.Package)
	assert.Equal(t, "1.0.0", captured.Version)
	assert.True(t, captured.Undo)
}

func TestCommands_Search(t *testing.T) {
	var captured app.SearchOptions
	mock := &mockApp{
		searchFunc: func(_ context.Context, opts app.SearchOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"search", "left", "pad", "--limit", "25"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "left pad", captured.Query)
	assert.Equal(t, 25, captured.Limit)
}

func TestCommands_Login(t *testing.T) {
	var gotToken, gotIndex string
	mock := &mockApp{
		loginFunc: func(_ context.Context, token, index string) error {
			gotToken = token
			gotIndex = index
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"login", "secret", "--index", "https://alt.example.com"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "secret", gotToken)
	assert.Equal(t, "https://alt.example.com", gotIndex)
}
