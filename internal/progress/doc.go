// Package progress provides progress reporting for downloads.
//
// This package outputs human-readable progress information to stderr for
// downloads whose declared size crosses a reporting threshold. Small
// downloads and downloads of unknown size produce no output.
//
// # Usage
//
//	reporter := progress.NewReporter(progress.Options{
//	    MinSize: 1024 * 1024,
//	})
//
//	reporter.Start(url, contentLength)
//	// call as bytes arrive
//	reporter.Advance(n)
//	reporter.Done()
//
// # Output Format
//
//	[fetcher] Downloading: https://example.com/photo.jpg (4.20 MB)
//	[fetcher] Progress: 45.2% | 1.90 MB / 4.20 MB
package progress
