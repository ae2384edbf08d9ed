// Package config defines configuration structures for the image fetcher.
//
// Configuration can be provided via:
//   - Command-line flags
//   - Environment variables (FETCHER_ prefix)
//   - YAML configuration file
//
// # Structure
//
//	type Config struct {
//	    TargetDir       string
//	    MaxFileSize     int64
//	    AllowedTypes    []string
//	    Timeout         time.Duration
//	    Delay           time.Duration
//	    UserAgent       string
//	    ProgressMinSize int64
//	}
//
// Sizes in YAML and environment values accept human-readable strings such
// as "50MB"; durations use Go syntax such as "30s".
package config
