package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.trai.ch/pakt/internal/adapters/registry"
	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/ui/status"
	"go.trai.ch/zerr"
)

// searchLimitMax is the largest result count the registry serves per query.
const searchLimitMax = 100

// descriptionWidth caps a search result's description before the ellipsis.
const descriptionWidth = 128

// OwnersOptions control one ownership operation. Add, Remove, and List may
// be combined; they run in that order.
type OwnersOptions struct {
	Package string
	Add     []string
	Remove  []string
	List    bool

	Token   string
	Index   string
	Offline bool
}

// ModifyOwners adds, removes, or lists the owners of a package.
func (a *App) ModifyOwners(ctx context.Context, opts OwnersOptions) error {
	name, err := a.packageName(opts.Package)
	if err != nil {
		return err
	}

	client, _, err := a.resolveRegistry(ctx, opts.Token, opts.Index, opts.Offline)
	if err != nil {
		return err
	}

	if len(opts.Add) > 0 {
		a.status.Status("Owner", fmt.Sprintf("adding %s to crate %s", strings.Join(opts.Add, ", "), name))
		if err := client.AddOwners(ctx, name, opts.Add); err != nil {
			return zerr.Wrap(err, fmt.Sprintf("failed to add owners to crate %s", name))
		}
	}
	if len(opts.Remove) > 0 {
		a.status.Status("Owner", fmt.Sprintf("removing %s from crate %s", strings.Join(opts.Remove, ", "), name))
		if err := client.RemoveOwners(ctx, name, opts.Remove); err != nil {
			return zerr.Wrap(err, fmt.Sprintf("failed to remove owners from crate %s", name))
		}
	}
	if opts.List {
		owners, err := client.ListOwners(ctx, name)
		if err != nil {
			return zerr.Wrap(err, fmt.Sprintf("failed to list owners of crate %s", name))
		}
		for _, owner := range owners {
			a.status.Print(owner.String())
		}
	}
	return nil
}

// YankOptions control one yank or unyank.
type YankOptions struct {
	Package string
	Version string
	Undo    bool

	Token   string
	Index   string
	Offline bool
}

// Yank excludes a published version from new resolutions, or reverses that
// with Undo.
func (a *App) Yank(ctx context.Context, opts YankOptions) error {
	name, err := a.packageName(opts.Package)
	if err != nil {
		return err
	}
	if opts.Version == "" {
		return domain.ErrVersionRequired
	}

	client, _, err := a.resolveRegistry(ctx, opts.Token, opts.Index, opts.Offline)
	if err != nil {
		return err
	}

	if opts.Undo {
		a.status.Status("Unyank", name+":"+opts.Version)
		if err := client.Unyank(ctx, name, opts.Version); err != nil {
			return zerr.Wrap(err, "failed to undo a yank")
		}
		return nil
	}

	a.status.Status("Yank", name+":"+opts.Version)
	if err := client.Yank(ctx, name, opts.Version); err != nil {
		return zerr.Wrap(err, "failed to yank")
	}
	return nil
}

// SearchOptions control one registry search.
type SearchOptions struct {
	Query string
	Limit int

	Index   string
	Offline bool
}

// Search queries the registry and prints an aligned listing of the matches.
func (a *App) Search(ctx context.Context, opts SearchOptions) error {
	client, _, err := a.resolveRegistry(ctx, "", opts.Index, opts.Offline)
	if err != nil {
		return err
	}

	results, total, err := client.Search(ctx, opts.Query, opts.Limit)
	if err != nil {
		return zerr.Wrap(err, "failed to retrieve search results from the registry")
	}

	labels := make([]string, 0, len(results))
	descriptions := make([]string, 0, len(results))
	for _, result := range results {
		labels = append(labels, fmt.Sprintf("%s (%s)", result.Name, result.MaxVersion))
		descriptions = append(descriptions, truncateDescription(result.Description))
	}

	margin := status.Margin(labels)
	for i, label := range labels {
		a.status.Print(status.Row(label, descriptions[i], margin))
	}

	if total > opts.Limit {
		extra := total - opts.Limit
		if opts.Limit < searchLimitMax {
			a.status.Print(fmt.Sprintf("... and %d packages more (use --limit N to see more)", extra))
		} else {
			a.status.Print(fmt.Sprintf(
				"... and %d packages more (go to https://pakt.dev/search?q=%s to see more)",
				extra, url.PathEscape(opts.Query)))
		}
	}
	return nil
}

// truncateDescription collapses newlines and caps the description with a
// single trailing ellipsis.
func truncateDescription(description string) string {
	flat := strings.ReplaceAll(description, "\n", " ")
	runes := []rune(flat)
	if len(runes) <= descriptionWidth {
		return flat
	}
	return string(runes[:descriptionWidth]) + "…"
}

// Login persists the registry auth token for later commands.
func (a *App) Login(_ context.Context, token, index string) error {
	if token == "" {
		return domain.ErrTokenRequired
	}
	if err := a.config.SaveRegistryLogin(token); err != nil {
		return zerr.Wrap(err, "failed to save registry token")
	}

	effectiveIndex := index
	if effectiveIndex == "" {
		if cfg := registry.Configuration(a.config); cfg.Index != "" {
			effectiveIndex = cfg.Index
		} else {
			effectiveIndex = registry.DefaultIndex
		}
	}
	a.status.Status("Login", fmt.Sprintf("token for `%s` saved", effectiveIndex))
	return nil
}
