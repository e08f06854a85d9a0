package fetch

import (
	"context"
	"log"
)

// JobOptions controls how a job posting URL is turned into text.
type JobOptions struct {
	// UseBrowser enables the headless browser fallback when a plain fetch
	// returns too little text.
	UseBrowser bool
	Verbose    bool
	Fetch      *Options
}

// JobText fetches a job posting URL and returns its plain text. It tries a
// plain HTTP fetch first; when the result looks like an unrendered SPA shell
// and the browser fallback is enabled, it renders the page with a headless
// browser and extracts again.
func JobText(ctx context.Context, url string, opts JobOptions) (string, error) {
	result, err := URL(ctx, url, opts.Fetch)
	if err != nil {
		return "", err
	}

	text, err := ExtractMainText(result.HTML, JobPostingSelectors())
	if err != nil {
		return "", &Error{URL: url, Message: "failed to extract posting text", Cause: err}
	}

	if ShouldUseBrowser(text) && opts.UseBrowser {
		if opts.Verbose {
			log.Printf("[FETCH] Extracted only %d chars, retrying with browser rendering", len(text))
		}
		timeout := DefaultTimeout
		if opts.Fetch != nil && opts.Fetch.Timeout > 0 {
			timeout = opts.Fetch.Timeout
		}
		html, err := WithBrowser(ctx, url, timeout, opts.Verbose)
		if err != nil {
			return "", &Error{URL: url, Message: "browser fallback failed", Cause: err}
		}
		text, err = ExtractMainText(html, JobPostingSelectors())
		if err != nil {
			return "", &Error{URL: url, Message: "failed to extract rendered posting text", Cause: err}
		}
	}

	if text == "" {
		return "", &Error{URL: url, Message: "no text content found"}
	}
	return text, nil
}
