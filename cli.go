package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// ErrDisallowedByRobots is returned when --respect-robots is set and robots.txt forbids the page.
var ErrDisallowedByRobots = errors.New("page disallowed by robots.txt")

// fetchError marks a failure to retrieve the target page.
type fetchError struct {
	Err error
}

func (e *fetchError) Error() string {
	return "fetching website: " + e.Err.Error()
}

func (e *fetchError) Unwrap() error {
	return e.Err
}

// Config holds the command-line settings for a single run.
type Config struct {
	Timeout       time.Duration
	UserAgent     string
	RespectRobots bool
	Raw           bool
	Verbose       bool
}

func defaultConfig() Config {
	return Config{
		Timeout:   defaultFetchTimeout,
		UserAgent: defaultUserAgent,
	}
}

func (c Config) fetchOptions() FetchOptions {
	return FetchOptions{UserAgent: c.UserAgent, Timeout: c.Timeout}
}

// newRootCmd builds the linkfinder command.
func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "linkfinder [flags] <url>",
		Short: "List the links found on a web page",
		Long: `Fetches a single page and prints the href of every <a> element on it,
resolved against the page URL.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := NewStreamLogger(cmd.ErrOrStderr(), cfg.Verbose)
			return runFind(cmd.Context(), cmd.OutOrStdout(), logger, cfg, args[0])
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP request timeout")
	flags.StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent header sent with the request")
	flags.BoolVar(&cfg.RespectRobots, "respect-robots", false, "Refuse to fetch pages disallowed by the site's robots.txt")
	flags.BoolVar(&cfg.Raw, "raw", false, "Print links exactly as written in the page, without resolving them")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// runFind fetches rawURL, extracts its links and writes them to out.
func runFind(ctx context.Context, out io.Writer, logger Logger, cfg Config, rawURL string) error {
	target, err := parseBaseURL(rawURL)
	if err != nil {
		return err
	}
	opts := cfg.fetchOptions()

	if cfg.RespectRobots {
		robots, err := LoadRobotsForSite(ctx, target, opts, logger)
		if err != nil {
			return fmt.Errorf("loading robots.txt: %w", err)
		}
		if !robots.IsAllowed(target.RequestURI(), opts.UserAgent) {
			logger.Warn("robots.txt disallows %s for %s", target.RequestURI(), opts.UserAgent)
			return fmt.Errorf("%w: %s", ErrDisallowedByRobots, rawURL)
		}
	}

	logger.Debug("Attempting to fetch content from %s", rawURL)
	content, err := FetchPage(ctx, target, opts)
	if err != nil {
		return &fetchError{Err: err}
	}
	logger.Debug("Successfully fetched content from %s", rawURL)

	links := ExtractLinks(content)
	logger.Info("Extracted %d links from %s", len(links), rawURL)

	if !cfg.Raw {
		links, err = NormalizeURLs(rawURL, links)
		if err != nil {
			return err
		}
	}

	printLinks(out, links)
	return nil
}

// execute runs the command with args and returns the process exit code.
// Errors are reported on stderr.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func reportError(w io.Writer, err error) {
	var fetchErr *fetchError
	if errors.As(err, &fetchErr) {
		fmt.Fprintf(w, "Error fetching website: %v\n", fetchErr.Err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func printLinks(out io.Writer, links []string) {
	if len(links) == 0 {
		fmt.Fprintln(out, "No links found on the page")
		return
	}
	fmt.Fprintln(out, "Found the following links:")
	lo.ForEach(links, func(link string, _ int) {
		fmt.Fprintf(out, "  %s\n", link)
	})
}
