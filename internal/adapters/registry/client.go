package registry

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/zerr"
)

// Client talks to one registry's API host with one (possibly empty) auth
// token. It implements ports.RegistryClient.
type Client struct {
	api   string
	token string
	http  *http.Client
}

// NewClient binds a client to an API host, token, and transport handle.
func NewClient(api, token string, httpClient *http.Client) *Client {
	return &Client{
		api:   strings.TrimRight(api, "/"),
		token: token,
		http:  httpClient,
	}
}

// Publish uploads a new package version. The wire format frames the JSON
// metadata and the artifact back to back, each preceded by its byte length
// as a little-endian uint32.
func (c *Client) Publish(ctx context.Context, pkg *domain.PublishRequest, artifact io.Reader) error {
	meta, err := json.Marshal(pkg)
	if err != nil {
		return zerr.Wrap(err, "failed to encode publish metadata")
	}
	tarball, err := io.ReadAll(artifact)
	if err != nil {
		return zerr.Wrap(err, "failed to read artifact stream")
	}

	var body bytes.Buffer
	body.Grow(8 + len(meta) + len(tarball))
	if err := binary.Write(&body, binary.LittleEndian, uint32(len(meta))); err != nil {
		return err
	}
	body.Write(meta)
	if err := binary.Write(&body, binary.LittleEndian, uint32(len(tarball))); err != nil {
		return err
	}
	body.Write(tarball)

	// The publish body is the length-framed binary above, not JSON.
	return c.do(ctx, http.MethodPut, "/api/v1/packages/new", "", &body, nil)
}

// Yank marks a published version as excluded from new resolutions.
func (c *Client) Yank(ctx context.Context, name, version string) error {
	path := fmt.Sprintf("/api/v1/packages/%s/%s/yank", url.PathEscape(name), url.PathEscape(version))
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// Unyank reverses a yank.
func (c *Client) Unyank(ctx context.Context, name, version string) error {
	path := fmt.Sprintf("/api/v1/packages/%s/%s/unyank", url.PathEscape(name), url.PathEscape(version))
	return c.do(ctx, http.MethodPut, path, "", nil, nil)
}

type ownersRequest struct {
	Users []string `json:"users"`
}

type ownersResponse struct {
	Users []domain.Owner `json:"users"`
}

// AddOwners grants ownership of the named package to the given logins.
func (c *Client) AddOwners(ctx context.Context, name string, logins []string) error {
	return c.modifyOwners(ctx, http.MethodPut, name, logins)
}

// RemoveOwners revokes ownership of the named package from the given logins.
func (c *Client) RemoveOwners(ctx context.Context, name string, logins []string) error {
	return c.modifyOwners(ctx, http.MethodDelete, name, logins)
}

func (c *Client) modifyOwners(ctx context.Context, method, name string, logins []string) error {
	body, err := json.Marshal(ownersRequest{Users: logins})
	if err != nil {
		return zerr.Wrap(err, "failed to encode owners request")
	}
	path := fmt.Sprintf("/api/v1/packages/%s/owners", url.PathEscape(name))
	return c.do(ctx, method, path, "application/json", bytes.NewReader(body), nil)
}

// ListOwners returns the package's ownership list in registry order.
func (c *Client) ListOwners(ctx context.Context, name string) ([]domain.Owner, error) {
	path := fmt.Sprintf("/api/v1/packages/%s/owners", url.PathEscape(name))
	var resp ownersResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

type searchResponse struct {
	Packages []domain.SearchResult `json:"packages"`
	Meta     struct {
		Total int `json:"total"`
	} `json:"meta"`
}

// Search queries the registry, returning at most limit rows and the total
// number of matches.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, int, error) {
	path := fmt.Sprintf("/api/v1/packages?q=%s&per_page=%d", url.QueryEscape(query), limit)
	var resp searchResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Packages, resp.Meta.Total, nil
}

type apiErrors struct {
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
}

// do performs one API request. contentType, when non-empty, is stamped on
// the request body. out, when non-nil, receives the decoded response body.
// There is no retry: a single failed request fails the enclosing operation.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, c.api+path, body)
	if err != nil {
		return zerr.Wrap(err, "failed to build registry request")
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zerr.Wrap(err, "registry request failed to complete")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := zerr.With(domain.ErrRegistryRequestFailed, "status", resp.Status)
		if detail := readErrorDetail(resp.Body); detail != "" {
			apiErr = zerr.With(apiErr, "detail", detail)
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return zerr.Wrap(err, "failed to decode registry response")
		}
	}
	return nil
}

func readErrorDetail(body io.Reader) string {
	var errs apiErrors
	if err := json.NewDecoder(body).Decode(&errs); err != nil {
		return ""
	}
	details := make([]string, 0, len(errs.Errors))
	for _, e := range errs.Errors {
		if e.Detail != "" {
			details = append(details, e.Detail)
		}
	}
	return strings.Join(details, "; ")
}
