package main

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/samber/lo"
)

type PageReturn struct {
	HTML              string
	URL               string
	StatusCode        int
	DelayMilliseconds time.Duration
}

// startTestServerPages serves each page at its URL and 404s everything else.
func startTestServerPages(pages []PageReturn) *httptest.Server {
	handler := http.NewServeMux()

	lo.ForEach(pages, func(page PageReturn, _ int) {
		handler.HandleFunc(page.URL, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(page.DelayMilliseconds * time.Millisecond)
			w.WriteHeader(page.StatusCode)
			w.Write([]byte(page.HTML))
		})
	})
	handler.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	return httptest.NewServer(handler)
}
