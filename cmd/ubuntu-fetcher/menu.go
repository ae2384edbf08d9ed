package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Ngong2/ubuntu-image-fetcher/internal/config"
	"github.com/Ngong2/ubuntu-image-fetcher/internal/fetcher"
	"github.com/Ngong2/ubuntu-image-fetcher/internal/progress"
)

// exampleURLs is a built-in set for smoke-testing the pipeline.
var exampleURLs = []string{
	"https://httpbin.org/image/jpeg",
	"https://httpbin.org/image/png",
	"https://httpbin.org/image/webp",
	"https://picsum.photos/800/600",
	"https://picsum.photos/400/400?random=1",
}

// exampleDelay paces the example-set batch.
const exampleDelay = 500 * time.Millisecond

// runMenu drives the interactive menu until the user exits. All core work
// happens in the fetcher; this loop only collects input and renders
// outcomes.
func runMenu(ctx context.Context, f *fetcher.Fetcher, cfg config.Config, in io.Reader, out io.Writer) int {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Ubuntu Image Fetcher")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Choose an option:")
		fmt.Fprintln(out, "1. Download single image")
		fmt.Fprintln(out, "2. Download multiple images")
		fmt.Fprintln(out, "3. Use example URLs")
		fmt.Fprintln(out, "4. Exit")
		fmt.Fprint(out, "\nYour choice (1-4): ")

		if !scanner.Scan() {
			return ExitSuccess
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			fmt.Fprint(out, "Enter image URL: ")
			if !scanner.Scan() {
				return ExitSuccess
			}
			url := strings.TrimSpace(scanner.Text())
			if url == "" {
				fmt.Fprintln(out, "No URL provided")
				continue
			}
			renderOutcome(out, f.Fetch(ctx, url))

		case "2":
			urls := readURLs(scanner, out)
			if len(urls) == 0 {
				fmt.Fprintln(out, "No URLs provided")
				continue
			}
			delay := readDelay(scanner, out, cfg.Delay)
			summary := f.FetchAll(ctx, urls, delay, func(o fetcher.Outcome) {
				renderOutcome(out, o)
			})
			renderSummary(out, summary)

		case "3":
			fmt.Fprintln(out, "\nTesting with example URLs...")
			summary := f.FetchAll(ctx, exampleURLs, exampleDelay, func(o fetcher.Outcome) {
				renderOutcome(out, o)
			})
			renderSummary(out, summary)

		case "4":
			fmt.Fprintln(out, "Goodbye!")
			return ExitSuccess

		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}
	}
}

// readURLs collects URLs line by line until an empty line. Lines may also
// hold several URLs separated by commas.
func readURLs(scanner *bufio.Scanner, out io.Writer) []string {
	fmt.Fprintln(out, "Enter URLs (one per line or comma-separated, empty line to finish):")

	var urls []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		for _, u := range strings.Split(line, ",") {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, u)
			}
		}
	}
	return urls
}

// readDelay prompts for an inter-request delay in seconds, falling back to
// the configured default on empty or invalid input.
func readDelay(scanner *bufio.Scanner, out io.Writer, fallback time.Duration) time.Duration {
	fmt.Fprintf(out, "Delay between requests in seconds (default %.0f): ", fallback.Seconds())
	if !scanner.Scan() {
		return fallback
	}
	text := strings.TrimSpace(scanner.Text())
	if text == "" {
		return fallback
	}

	var seconds float64
	if _, err := fmt.Sscanf(text, "%f", &seconds); err != nil || seconds < 0 {
		return fallback
	}
	return time.Duration(seconds * float64(time.Second))
}

// renderOutcome prints one fetch result as a human-readable line.
func renderOutcome(out io.Writer, o fetcher.Outcome) {
	switch o.Status {
	case fetcher.StatusSaved:
		fmt.Fprintf(out, "Saved: %s (%s)\n", o.Path, progress.FormatBytes(o.Size))
	case fetcher.StatusSkipped:
		fmt.Fprintf(out, "Skipped duplicate: already saved as %s\n", o.ExistingPath)
	case fetcher.StatusRejected:
		fmt.Fprintf(out, "Rejected (%s): %v\n", o.Reason, o.Err)
	case fetcher.StatusFailed:
		fmt.Fprintf(out, "Failed (%s): %v\n", o.Reason, o.Err)
	}
}

// renderSummary prints batch totals.
func renderSummary(out io.Writer, s fetcher.Summary) {
	fmt.Fprintln(out, "\nSummary:")
	fmt.Fprintf(out, "  Saved:    %d\n", s.Saved)
	fmt.Fprintf(out, "  Skipped:  %d\n", s.Skipped)
	fmt.Fprintf(out, "  Rejected: %d\n", s.Rejected)
	fmt.Fprintf(out, "  Failed:   %d\n", s.Failed)
	fmt.Fprintf(out, "  Images stored in: %s\n", s.Dir)
}
