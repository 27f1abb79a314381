package network

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"

	"portfolio/backend/internal/config"
)

// ClientFactory creates outbound HTTP clients that honor the configured proxy.
type ClientFactory struct {
	proxyURL      string
	testTransport http.RoundTripper // For testing only
}

// NewClientFactory creates a new client factory. An empty proxyURL dials directly.
func NewClientFactory(proxyURL string) *ClientFactory {
	return &ClientFactory{proxyURL: strings.TrimSpace(proxyURL)}
}

// NewClientFactoryForTest creates a client factory whose clients use transport.
// This is only for use in tests.
func NewClientFactoryForTest(transport http.RoundTripper) *ClientFactory {
	return &ClientFactory{testTransport: transport}
}

// NewHTTPClient creates a standard http.Client with proxy configuration.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: f.NewHTTPTransport()},
	}
}

// NewHTTPTransport creates a transport with proxy configuration.
func (f *ClientFactory) NewHTTPTransport() http.RoundTripper {
	if f.testTransport != nil {
		return f.testTransport
	}
	if f.proxyURL != "" {
		return newTransportWithProxy(f.proxyURL)
	}
	return http.DefaultTransport.(*http.Transport).Clone()
}

// ProxyURL returns the configured proxy URL.
func (f *ClientFactory) ProxyURL() string {
	return f.proxyURL
}

// userAgentTransport sets the backend's User-Agent on requests that carry none.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", config.UserAgent)
	}
	return t.base.RoundTrip(req)
}

// newTransportWithProxy creates an http.Transport with proper proxy support.
// For SOCKS5 proxies, it uses golang.org/x/net/proxy for correct handling.
// For HTTP/HTTPS proxies, it uses the standard http.ProxyURL.
func newTransportWithProxy(proxyURL string) *http.Transport {
	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return &http.Transport{}
	}

	if strings.HasPrefix(parsed.Scheme, "socks") {
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{
				User: parsed.User.Username(),
			}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return &http.Transport{}
		}

		if contextDialer, ok := dialer.(proxy.ContextDialer); ok {
			return &http.Transport{DialContext: contextDialer.DialContext}
		}
		return &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		}
	}

	return &http.Transport{
		Proxy: http.ProxyURL(parsed),
	}
}
