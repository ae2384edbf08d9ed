// Package fetcher implements the image download pipeline.
//
// One fetch moves through a fixed sequence: issue the request, validate
// the response headers against content policy, stream the body with a
// running size check, detect duplicate content by hash, then resolve a
// filename and save atomically. The result is always a single Outcome;
// the pipeline never returns an error to its caller.
//
//	resp, err := client.Get(...)      // Failed(network | http-status)
//	validator.Validate(headers)       // Rejected(invalid-content-type | too-large)
//	stream body, running total        // Rejected(too-large) mid-stream
//	hash lookup                       // Skipped(duplicate)
//	resolve name + save               // Saved, or Failed(filesystem)
//
// Duplicate detection covers one program run. The known-hash set is
// rebuilt from the target directory at startup (Seed) and grows with each
// save; nothing is persisted separately.
//
// FetchAll runs a whole URL list through the pipeline sequentially with a
// pause between consecutive requests, and aggregates the outcomes into a
// Summary.
package fetcher
