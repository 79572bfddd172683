package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/alitto/pond/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-marketplace-api/internal/adapter"
	"github.com/feral-file/ff-marketplace-api/internal/logger"
)

const (
	// DEFAULT_CHUNK_SIZE is the number of handles resolved per request to the identity service
	DEFAULT_CHUNK_SIZE = 50
	// DEFAULT_WORKERS bounds the concurrent requests to the identity service across all callers
	DEFAULT_WORKERS = 4
)

// Profile is the public identity of a twitter handle
type Profile struct {
	Handle    string  `json:"handle"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Verified  bool    `json:"verified"`
}

// Client resolves twitter handles to identity profiles
//
//go:generate mockgen -source=client.go -destination=../mocks/identity.go -package=mocks -mock_names=Client=MockIdentityClient
type Client interface {
	// GetProfiles resolves handles to profiles keyed by the requested handle.
	// Handles unknown to the identity service are absent from the result, as are all handles
	// when no service is configured.
	GetProfiles(ctx context.Context, handles []string) (map[string]*Profile, error)

	// Close stops the worker pool once in-flight requests complete
	Close()
}

// Config holds identity client configuration
type Config struct {
	BaseURL   string
	ChunkSize int
	Workers   int
	// RequestsPerSecond caps outgoing requests; 0 disables the limit
	RequestsPerSecond float64
	Burst             int
}

type profilesRequest struct {
	Handles []string `json:"handles"`
}

type profilesResponse struct {
	Profiles []Profile `json:"profiles"`
}

type client struct {
	baseURL    string
	chunkSize  int
	httpClient adapter.HTTPClient
	pool       pond.ResultPool[[]Profile]
	limiter    *rate.Limiter
}

// NewClient creates an identity service client
func NewClient(httpClient adapter.HTTPClient, cfg Config) Client {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DEFAULT_CHUNK_SIZE
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DEFAULT_WORKERS
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = cfg.Workers
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		chunkSize:  cfg.ChunkSize,
		httpClient: httpClient,
		pool:       pond.NewResultPool[[]Profile](cfg.Workers),
		limiter:    limiter,
	}
}

// GetProfiles resolves handles in chunks fanned out on the worker pool
func (c *client) GetProfiles(ctx context.Context, handles []string) (map[string]*Profile, error) {
	result := make(map[string]*Profile, len(handles))
	if len(handles) == 0 || c.baseURL == "" {
		return result, nil
	}

	// The identity service matches handles case-insensitively; every spelling requested gets the profile
	requested := make(map[string][]string, len(handles))
	for _, h := range handles {
		key := strings.ToLower(h)
		if !slices.Contains(requested[key], h) {
			requested[key] = append(requested[key], h)
		}
	}
	unique := lo.Keys(requested)
	slices.Sort(unique)

	chunks := lo.Chunk(unique, c.chunkSize)
	tasks := make([]pond.Result[[]Profile], 0, len(chunks))
	for _, chunk := range chunks {
		tasks = append(tasks, c.pool.SubmitErr(func() ([]Profile, error) {
			return c.fetchProfiles(ctx, chunk)
		}))
	}

	for _, task := range tasks {
		profiles, err := task.Wait()
		if err != nil {
			return nil, err
		}

		for i := range profiles {
			spellings, ok := requested[strings.ToLower(profiles[i].Handle)]
			if !ok {
				logger.DebugCtx(ctx, "Identity service returned an unrequested handle",
					zap.String("handle", profiles[i].Handle))
				continue
			}
			for _, handle := range spellings {
				result[handle] = &profiles[i]
			}
		}
	}

	return result, nil
}

func (c *client) fetchProfiles(ctx context.Context, handles []string) ([]Profile, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	body, err := json.Marshal(profilesRequest{Handles: handles})
	if err != nil {
		return nil, fmt.Errorf("failed to encode profiles request: %w", err)
	}

	respBody, err := c.httpClient.Post(ctx, c.baseURL+"/profiles", "application/json", body)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	var resp profilesResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode profiles response: %w", err)
	}

	return resp.Profiles, nil
}

// Close stops the worker pool
func (c *client) Close() {
	c.pool.StopAndWait()
}
