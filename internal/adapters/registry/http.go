// Package registry implements the registry API client and the network
// policy shared by every registry-bound operation.
package registry

import (
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"go.trai.ch/pakt/internal/adapters/config"
	"go.trai.ch/pakt/internal/core/domain"
	"go.trai.ch/pakt/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultIndex is the built-in registry index URL.
	DefaultIndex = "https://registry.pakt.dev"

	connectTimeout = 30 * time.Second

	// A transfer whose throughput stays below lowSpeedFloor bytes/second
	// for a full lowSpeedWindow is considered stalled, not merely slow.
	lowSpeedFloor  = 10
	lowSpeedWindow = 30 * time.Second
)

// proxyEnvVars are the conventional proxy environment variables. They are
// existence-checked only; the transport layer consumes them itself.
var proxyEnvVars = []string{"http_proxy", "HTTP_PROXY", "https_proxy", "HTTPS_PROXY"}

// HTTPSettings is the resolved network policy for one invocation.
type HTTPSettings struct {
	// Offline forbids any network access.
	Offline bool

	// Proxy is the explicitly configured proxy URL, empty to fall back to
	// the environment.
	Proxy string

	// Timeout, when non-zero, replaces both the connect timeout and the
	// low-speed window uniformly.
	Timeout time.Duration
}

// ResolveHTTPSettings computes the effective network policy from the config
// store, the environment, and the offline flag.
func ResolveHTTPSettings(cfg ports.ConfigStore, offline bool) HTTPSettings {
	settings := HTTPSettings{Offline: offline}
	if proxy, ok := resolveProxy(cfg); ok {
		settings.Proxy = proxy
	}
	if secs, ok := Timeout(cfg); ok {
		settings.Timeout = time.Duration(secs) * time.Second
	}
	return settings
}

// NewHTTPClient builds the HTTP client used for all registry traffic. It
// fails immediately when offline mode forbids network access; no request is
// ever attempted.
func NewHTTPClient(settings HTTPSettings) (*http.Client, error) {
	if settings.Offline {
		return nil, domain.ErrNetworkDisabled
	}

	connect := connectTimeout
	window := lowSpeedWindow
	if settings.Timeout > 0 {
		connect = settings.Timeout
		window = settings.Timeout
	}

	proxy := http.ProxyFromEnvironment
	if settings.Proxy != "" {
		proxyURL, err := url.Parse(settings.Proxy)
		if err != nil {
			parseErr := zerr.Wrap(err, "invalid proxy URL")
			return nil, zerr.With(parseErr, "proxy", settings.Proxy)
		}
		proxy = http.ProxyURL(proxyURL)
	}

	transport := &http.Transport{
		Proxy:               proxy,
		DialContext:         stallGuardDialer(connect, lowSpeedFloor, window),
		TLSHandshakeTimeout: connect,
	}
	return &http.Client{Transport: transport}, nil
}

// ProxyExists reports whether any proxy is in effect: an explicit config
// value, git's global proxy, or one of the conventional environment
// variables.
func ProxyExists(cfg ports.ConfigStore) bool {
	if _, ok := resolveProxy(cfg); ok {
		return true
	}
	for _, name := range proxyEnvVars {
		if _, ok := os.LookupEnv(name); ok {
			return true
		}
	}
	return false
}

// Timeout returns the override timeout in seconds: the config value if
// present, else the HTTP_TIMEOUT environment variable as an integer.
func Timeout(cfg ports.ConfigStore) (int64, bool) {
	return firstOf(
		func() (int64, bool) { return cfg.GetInt("http.timeout") },
		timeoutFromEnv,
	)
}

// resolveProxy favors pakt's http.proxy over git's globally configured
// proxy. Environment-variable proxies are left to the transport.
func resolveProxy(cfg ports.ConfigStore) (string, bool) {
	return firstOf(
		func() (string, bool) { return cfg.GetString("http.proxy") },
		config.GitProxy,
	)
}

func timeoutFromEnv() (int64, bool) {
	raw, ok := os.LookupEnv("HTTP_TIMEOUT")
	if !ok {
		return 0, false
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return secs, true
}

// firstOf evaluates candidates in precedence order and returns the first
// value produced. It is the single place layered precedence is implemented.
func firstOf[T any](candidates ...func() (T, bool)) (T, bool) {
	for _, candidate := range candidates {
		if v, ok := candidate(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
