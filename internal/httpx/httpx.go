// Package httpx fetches remote catalog documents.
package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	DefaultTimeout = 20 * time.Second
	// MaxBody caps a downloaded catalog.
	MaxBody int64 = 64 << 20
)

// Get fetches url and returns the body. Non-2xx responses become errors that
// carry a short excerpt of the body.
func Get(ctx context.Context, url string) ([]byte, error) {
	return get(ctx, url, "application/json, application/yaml;q=0.9, */*;q=0.5")
}

// GetJSON is Get for endpoints that only serve JSON.
func GetJSON(ctx context.Context, url string) ([]byte, error) {
	return get(ctx, url, "application/json")
}

func get(ctx context.Context, url, accept string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("GET %s: %s (%d)", url, string(b), resp.StatusCode)
	}
	all, err := io.ReadAll(io.LimitReader(resp.Body, MaxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(all)) > MaxBody {
		return nil, fmt.Errorf("GET %s: body larger than %d bytes", url, MaxBody)
	}
	return all, nil
}
