package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/Ngong2/ubuntu-image-fetcher/internal/store"
)

// extByType maps allowed content types to filename extensions.
var extByType = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/bmp":     ".bmp",
	"image/tiff":    ".tiff",
	"image/svg+xml": ".svg",
}

// Resolver derives safe, unique on-disk filenames for downloaded images.
type Resolver struct {
	store *store.Store
}

// NewResolver creates a resolver over the given store.
func NewResolver(st *store.Store) *Resolver {
	return &Resolver{store: st}
}

// Resolve returns the filename to save a download under. The last URL path
// segment is used when it sanitizes to a usable name with an extension;
// otherwise a generated name of the form image_<hash>.<ext> is used, where
// the hash is derived from the URL and stable across runs. If the name is
// already taken in the store, a numeric suffix is appended before the
// extension until a free name is found.
//
// The returned name never contains directory separators or traversal
// segments; anything unsafe is stripped during sanitizing.
func (r *Resolver) Resolve(ctx context.Context, rawURL, contentType string) (string, error) {
	name := candidateFromURL(rawURL)
	if name == "" {
		name = generatedName(rawURL, contentType)
	}

	exists, err := r.store.Exists(ctx, name)
	if err != nil {
		return "", fmt.Errorf("check %s: %w", name, err)
	}
	if !exists {
		return name, nil
	}

	base, ext := splitExt(name)
	for counter := 1; ; counter++ {
		next := fmt.Sprintf("%s_%d%s", base, counter, ext)
		exists, err := r.store.Exists(ctx, next)
		if err != nil {
			return "", fmt.Errorf("check %s: %w", next, err)
		}
		if !exists {
			return next, nil
		}
	}
}

// candidateFromURL extracts and sanitizes the last path segment of the URL.
// It returns "" when no usable name with an extension can be derived.
func candidateFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Path == "" {
		return ""
	}

	segment := path.Base(parsed.Path)
	if unescaped, err := url.PathUnescape(segment); err == nil {
		segment = unescaped
	}

	name := sanitize(segment)
	name = strings.TrimLeft(name, ".")

	base, ext := splitExt(name)
	if base == "" || ext == "" {
		return ""
	}
	return name
}

// generatedName builds image_<hash>.<ext> from the URL and content type.
func generatedName(rawURL, contentType string) string {
	ext, ok := extByType[normalizeType(contentType)]
	if !ok {
		ext = ".jpg"
	}
	return "image_" + HashString(rawURL)[:8] + ext
}

// sanitize keeps only characters safe for a filename.
func sanitize(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == '.' || c == '_' || c == '-':
			b.WriteRune(c)
		}
	}
	return b.String()
}

// splitExt splits a name into base and extension. A name whose only dot
// leads (or that has no dot) yields an empty extension.
func splitExt(name string) (base, ext string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}
