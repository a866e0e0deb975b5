package udns

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-logr/logr"
)

// Option configures a Client.
type Option func(*clientConfig)

// clientConfig holds client configuration.
type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        logr.Logger
	userAgent  string
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: 30 * time.Second,
		log:     logr.Discard(),
	}
}

// WithBaseURL sets the REST endpoint (default: "https://restapi.ultradns.com").
func WithBaseURL(u string) Option {
	return func(c *clientConfig) {
		c.baseURL = u
	}
}

// WithTimeout sets the request timeout (default: 30s). Ignored when a
// custom HTTP client is supplied.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client, e.g. for proxy or TLS settings.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger (default: logr.Discard()).
func WithLogger(log logr.Logger) Option {
	return func(c *clientConfig) {
		c.log = log
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// Sort columns accepted by the listing endpoints.
const (
	SortOwner       = "OWNER"
	SortTTL         = "TTL"
	SortType        = "TYPE"
	SortName        = "NAME"
	SortAccountName = "ACCOUNT_NAME"
	SortRecordCount = "RECORD_COUNT"
	SortZoneType    = "ZONE_TYPE"
)

// ListOption configures a listing request.
type ListOption func(*listConfig)

// listConfig holds per-listing query parameters.
type listConfig struct {
	query   string
	sort    string
	reverse bool
	offset  int
	limit   int
}

// values renders the configured parameters as a query string.
func (lc *listConfig) values() url.Values {
	params := url.Values{}
	if lc.query != "" {
		params.Set("q", lc.query)
	}
	if lc.sort != "" {
		params.Set("sort", lc.sort)
	}
	if lc.reverse {
		params.Set("reverse", "true")
	}
	if lc.offset > 0 {
		params.Set("offset", strconv.Itoa(lc.offset))
	}
	if lc.limit > 0 {
		params.Set("limit", strconv.Itoa(lc.limit))
	}
	return params
}

func listParams(opts []ListOption) url.Values {
	lc := &listConfig{}
	for _, opt := range opts {
		opt(lc)
	}
	return lc.values()
}

// WithQuery sets the search query, "<key1>:<value1>,<key2>:<value2>".
// Valid keys for records are ttl, owner and value; for zones, name and
// zone_type.
func WithQuery(q string) ListOption {
	return func(c *listConfig) {
		c.query = q
	}
}

// WithSort sets the sort column, one of the Sort* constants.
func WithSort(column string) ListOption {
	return func(c *listConfig) {
		c.sort = column
	}
}

// WithReverse orders the listing descending instead of ascending.
func WithReverse() ListOption {
	return func(c *listConfig) {
		c.reverse = true
	}
}

// WithOffset sets the zero-based position of the first returned element.
func WithOffset(n int) ListOption {
	return func(c *listConfig) {
		c.offset = n
	}
}

// WithLimit sets the maximum number of returned rows.
func WithLimit(n int) ListOption {
	return func(c *listConfig) {
		c.limit = n
	}
}
