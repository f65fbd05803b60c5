package main

import (
	"context"
	"errors"
	"net/url"

	"github.com/temoto/robotstxt"
)

// RobotsChecker is a struct that checks if a path is allowed by robots.txt rules
type RobotsChecker struct {
	robotsData *robotstxt.RobotsData
}

// LoadRobots loads the robots.txt content into the RobotsChecker
func (rc *RobotsChecker) LoadRobots(pageContent string) error {
	robots, err := robotstxt.FromString(pageContent)
	if err != nil {
		return err
	}
	rc.robotsData = robots
	return nil
}

// IsAllowed checks if a given path is allowed for a specific user agent
func (rc *RobotsChecker) IsAllowed(path, userAgent string) bool {
	return rc.robotsData.TestAgent(path, userAgent)
}

// NewRobotsChecker creates a new RobotsChecker instance and loads the robots.txt content
func NewRobotsChecker(robotsTxt string) (*RobotsChecker, error) {
	rc := &RobotsChecker{}
	err := rc.LoadRobots(robotsTxt)
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// newRobotsCheckerFromStatus applies the status-code rules for a robots.txt that returned no usable body:
// 4xx allows everything, 5xx disallows everything.
func newRobotsCheckerFromStatus(statusCode int) (*RobotsChecker, error) {
	robots, err := robotstxt.FromStatusAndString(statusCode, "")
	if err != nil {
		return nil, err
	}
	return &RobotsChecker{robotsData: robots}, nil
}

// LoadRobotsForSite fetches /robots.txt from the target's host.
// A non-2XX answer is judged by its status code; an unreachable host allows everything.
func LoadRobotsForSite(ctx context.Context, target *url.URL, opts FetchOptions, logger Logger) (*RobotsChecker, error) {
	robotsURL, err := target.Parse("/robots.txt")
	if err != nil {
		return nil, err
	}
	robots, err := FetchPage(ctx, robotsURL, opts)
	if err != nil {
		var httpErr *httpError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode >= 500 {
				logger.Warn("robots.txt at %s failed with status %d, treating site as disallowed", robotsURL.String(), httpErr.StatusCode)
			}
			return newRobotsCheckerFromStatus(httpErr.StatusCode)
		}
		logger.Debug("No usable robots.txt at %s, allowing all: %v", robotsURL.String(), err)
		robots = ""
	}
	return NewRobotsChecker(robots)
}
