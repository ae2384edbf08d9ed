// Package http provides the HTTP client used to download images.
//
// This package handles:
//   - Identifying request headers (User-Agent, DNT, Accept)
//   - A combined connect+read timeout per request
//   - Redirect following
//   - Mapping non-2xx responses to *StatusError
//
// # Usage
//
//	client := http.NewClient(http.Options{
//	    Timeout:   30 * time.Second,
//	    UserAgent: http.DefaultUserAgent,
//	})
//
//	resp, err := client.Get(ctx, url)
//	// on success the caller must close resp.Body
//
// The client performs no retries; a failed request is reported once to the
// caller.
package http
