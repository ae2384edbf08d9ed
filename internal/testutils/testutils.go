//go:build integration

// Package testutils provides shared test infrastructure for integration tests.
package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// HTTPBinEnv contains connection information for a httpbin test container.
// httpbin serves real JPEG/PNG/WebP test images, redirects, and arbitrary
// status codes, which covers every path through the fetch pipeline.
type HTTPBinEnv struct {
	Container testcontainers.Container
	BaseURL   string
}

// Close terminates the httpbin container.
func (e *HTTPBinEnv) Close(ctx context.Context) error {
	if e.Container != nil {
		return e.Container.Terminate(ctx)
	}
	return nil
}

// URL joins the base URL with a path such as "/image/jpeg".
func (e *HTTPBinEnv) URL(path string) string {
	return e.BaseURL + path
}

// StartHTTPBinContainer starts a httpbin container and waits until it
// answers requests.
func StartHTTPBinContainer(t *testing.T, ctx context.Context) *HTTPBinEnv {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "kennethreitz/httpbin:latest",
		ExposedPorts: []string{"80/tcp"},
		WaitingFor:   wait.ForHTTP("/status/200").WithPort("80/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start httpbin container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "80")
	if err != nil {
		t.Fatalf("get container port: %v", err)
	}

	return &HTTPBinEnv{
		Container: container,
		BaseURL:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}
}
