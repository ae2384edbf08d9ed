package fetcher

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/Ngong2/ubuntu-image-fetcher/internal/config"
	fetcherhttp "github.com/Ngong2/ubuntu-image-fetcher/internal/http"
	"github.com/Ngong2/ubuntu-image-fetcher/internal/progress"
	"github.com/Ngong2/ubuntu-image-fetcher/internal/store"
)

// chunkSize is the read size while streaming a response body.
const chunkSize = 32 * 1024

// Options configures a Fetcher.
type Options struct {
	// Client is the HTTP client to fetch with. A default client built
	// from the config is used when nil.
	Client *fetcherhttp.Client

	// Progress is an optional progress reporter for large downloads.
	Progress *progress.Reporter

	// Logger receives diagnostic output. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Fetcher runs the download-and-validate pipeline: request, header
// validation, streaming with a size cutoff, duplicate detection, and an
// atomic save. Each fetch ends in exactly one Outcome; errors never
// propagate past Fetch.
type Fetcher struct {
	client    *fetcherhttp.Client
	store     *store.Store
	validator *Validator
	resolver  *Resolver
	hashes    *KnownHashes
	reporter  *progress.Reporter
	log       zerolog.Logger
}

// New creates a Fetcher saving into st. Call Seed before the first fetch
// to pick up files already present in the target directory.
func New(st *store.Store, cfg config.Config, opts Options) *Fetcher {
	client := opts.Client
	if client == nil {
		client = fetcherhttp.NewClient(fetcherhttp.Options{
			Timeout:   cfg.Timeout,
			UserAgent: cfg.UserAgent,
		})
	}

	reporter := opts.Progress
	if reporter == nil {
		reporter = progress.NewReporter(progress.Options{MinSize: cfg.ProgressMinSize})
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Fetcher{
		client:    client,
		store:     st,
		validator: NewValidator(cfg.AllowedTypes, cfg.MaxFileSize),
		resolver:  NewResolver(st),
		hashes:    NewKnownHashes(),
		reporter:  reporter,
		log:       log,
	}
}

// Seed loads content hashes for every file already in the target directory
// so re-fetched images are skipped instead of saved twice.
func (f *Fetcher) Seed(ctx context.Context) (int, error) {
	n, err := f.hashes.Seed(ctx, f.store)
	if err != nil {
		return 0, err
	}
	f.log.Debug().Int("files", n).Str("dir", f.store.Dir()).Msg("seeded known hashes")
	return n, nil
}

// Hashes exposes the known-hash set, mainly for tests and diagnostics.
func (f *Fetcher) Hashes() *KnownHashes {
	return f.hashes
}

// Store returns the store the fetcher saves into.
func (f *Fetcher) Store() *store.Store {
	return f.store
}

// Fetch downloads one URL and returns its outcome. The body is buffered in
// memory until the duplicate check and save decide its fate, so no partial
// file ever reaches the target directory.
func (f *Fetcher) Fetch(ctx context.Context, url string) Outcome {
	f.log.Debug().Str("url", url).Msg("fetching")

	resp, err := f.client.Get(ctx, url)
	if err != nil {
		var statusErr *fetcherhttp.StatusError
		if errors.As(err, &statusErr) {
			f.log.Warn().Str("url", url).Int("status", statusErr.Code).Msg("http status error")
			return failed(url, ReasonHTTPStatus, err)
		}
		f.log.Warn().Str("url", url).Err(err).Msg("network error")
		return failed(url, ReasonNetwork, err)
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if err := f.validator.Validate(contentType, resp.ContentLength); err != nil {
		reason := ReasonContentType
		if errors.Is(err, ErrTooLarge) {
			reason = ReasonTooLarge
		}
		f.log.Info().Str("url", url).Str("content_type", contentType).Str("reason", string(reason)).Msg("rejected")
		return rejected(url, reason, err)
	}

	data, err := f.stream(url, resp.Body, resp.ContentLength)
	if err != nil {
		if errors.Is(err, ErrTooLarge) {
			f.log.Info().Str("url", url).Msg("rejected mid-stream, size limit exceeded")
			return rejected(url, ReasonTooLarge, err)
		}
		f.log.Warn().Str("url", url).Err(err).Msg("body read error")
		return failed(url, ReasonNetwork, err)
	}

	hash := HashBytes(data)
	if existing, ok := f.hashes.Lookup(hash); ok {
		f.log.Info().Str("url", url).Str("existing", existing).Msg("duplicate content, skipping")
		return skipped(url, f.store.Path(existing))
	}

	name, err := f.resolver.Resolve(ctx, url, contentType)
	if err != nil {
		return failed(url, ReasonFilesystem, err)
	}

	path, err := f.store.Save(ctx, name, data)
	if err != nil {
		f.log.Error().Str("url", url).Str("name", name).Err(err).Msg("save failed")
		return failed(url, ReasonFilesystem, err)
	}

	f.hashes.Add(hash, name)
	f.log.Info().Str("url", url).Str("path", path).Int("bytes", len(data)).Msg("saved")
	return saved(url, path, int64(len(data)), hash)
}

// stream reads the body in fixed-size chunks, enforcing the size limit on
// the running total and reporting progress when the declared length is
// large enough. Returns ErrTooLarge as soon as the limit is crossed; the
// rest of the transfer is abandoned.
func (f *Fetcher) stream(url string, body io.Reader, declared int64) ([]byte, error) {
	f.reporter.Start(url, declared)

	var buf bytes.Buffer
	chunk := make([]byte, chunkSize)
	var total int64

	for {
		n, err := body.Read(chunk)
		if n > 0 {
			total += int64(n)
			if f.validator.ExceedsLimit(total) {
				return nil, ErrTooLarge
			}
			buf.Write(chunk[:n])
			f.reporter.Advance(int64(n))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	f.reporter.Done()
	return buf.Bytes(), nil
}
