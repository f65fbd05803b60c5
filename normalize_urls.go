package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// ErrInvalidBaseURL is returned when the base URL lacks a scheme or host.
var ErrInvalidBaseURL = errors.New("invalid base URL")

type referenceKind int

const (
	absoluteReference referenceKind = iota
	rootRelativeReference
	documentRelativeReference
)

// classifyReference decides how a raw href is resolved.
// Protocol-relative ("//host/p") references count as root-relative,
// and pure query or fragment references count as document-relative.
func classifyReference(link string) referenceKind {
	switch {
	case strings.HasPrefix(link, "http://"), strings.HasPrefix(link, "https://"):
		return absoluteReference
	case strings.HasPrefix(link, "/"):
		return rootRelativeReference
	default:
		return documentRelativeReference
	}
}

// NormalizeURLs resolves every link against baseURL and returns them in the same order.
// The output always has the same length as links: a link that cannot be resolved is returned unchanged.
// The only error is an unusable baseURL, reported before any link is looked at.
func NormalizeURLs(baseURL string, links []string) ([]string, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	return lo.Map(links, func(link string, _ int) string {
		return resolveLink(base, link)
	}), nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidBaseURL, baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w %q: scheme and host are required", ErrInvalidBaseURL, baseURL)
	}
	return base, nil
}

// resolveLink resolves a single href against base.
func resolveLink(base *url.URL, link string) string {
	switch classifyReference(link) {
	case absoluteReference:
		return link
	case rootRelativeReference:
		// Only scheme and host survive; the base's path, query and fragment are dropped.
		return base.Scheme + "://" + base.Host + link
	default:
		ref, err := url.Parse(link)
		if err != nil {
			return link
		}
		return base.ResolveReference(ref).String()
	}
}
