package adapters

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"msys2-buildqueue/internal/ports"
	"msys2-buildqueue/internal/shared"
	"msys2-buildqueue/internal/types"
)

// MetadataHTTPAdapter fetches a metadata snapshot from an HTTP endpoint
// that serves the store's exported snapshot document (YAML or JSON).
// The snapshot is fetched once per adapter instance and cached, so every
// planning request sees one consistent view.
type MetadataHTTPAdapter struct {
	Endpoint   string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration

	cached types.Snapshot
	loaded bool
}

const defaultSnapshotTimeout = 30 * time.Second
const defaultSnapshotRetries = 3
const defaultSnapshotRetryDelay = 200 * time.Millisecond
const maxSnapshotRetryDelay = 2 * time.Second

func NewMetadataHTTPAdapter(endpoint string, timeoutSec int, retries int, retryDelayMs int) *MetadataHTTPAdapter {
	return &MetadataHTTPAdapter{
		Endpoint:   endpoint,
		Timeout:    normalizeSnapshotTimeout(timeoutSec),
		Retries:    normalizeSnapshotRetries(retries),
		RetryDelay: normalizeSnapshotRetryDelay(retryDelayMs),
	}
}

var _ ports.MetadataPort = (*MetadataHTTPAdapter)(nil)

func (a *MetadataHTTPAdapter) ListSources(ctx context.Context) ([]types.Source, error) {
	snapshot, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Sources, nil
}

func (a *MetadataHTTPAdapter) ListRecipePackages(ctx context.Context) ([]types.RecipePackage, error) {
	snapshot, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Recipes, nil
}

func (a *MetadataHTTPAdapter) load(ctx context.Context) (types.Snapshot, error) {
	if a.loaded {
		return a.cached, nil
	}
	if strings.TrimSpace(a.Endpoint) == "" {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot endpoint is empty")
	}
	data, err := a.fetch(ctx)
	if err != nil {
		return types.Snapshot{}, err
	}
	var snapshot types.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse snapshot document").
			WithCause(err)
	}
	a.cached = snapshot
	a.loaded = true
	return a.cached, nil
}

func (a *MetadataHTTPAdapter) fetch(ctx context.Context) ([]byte, error) {
	client := &http.Client{Timeout: a.Timeout}
	delay := a.RetryDelay
	var lastErr error
	for attempt := 0; attempt <= a.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
			if delay > maxSnapshotRetryDelay {
				delay = maxSnapshotRetryDelay
			}
		}
		data, err := a.fetchOnce(ctx, client)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to fetch snapshot document").
		WithCause(lastErr)
}

func (a *MetadataHTTPAdapter) fetchOnce(ctx context.Context, client *http.Client) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, shared.HTTPStatusErrorWithBody(resp.StatusCode, a.Endpoint, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func normalizeSnapshotTimeout(timeoutSec int) time.Duration {
	if timeoutSec <= 0 {
		return defaultSnapshotTimeout
	}
	return time.Duration(timeoutSec) * time.Second
}

func normalizeSnapshotRetries(retries int) int {
	if retries < 0 {
		return defaultSnapshotRetries
	}
	return retries
}

func normalizeSnapshotRetryDelay(delayMs int) time.Duration {
	if delayMs <= 0 {
		return defaultSnapshotRetryDelay
	}
	return time.Duration(delayMs) * time.Millisecond
}
