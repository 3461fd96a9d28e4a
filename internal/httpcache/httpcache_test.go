/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package httpcache

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gregjones/httpcache"

	"github.com/mikeb26/nfl-seedbot/internal"
)

// TestHeaderOverrideTransport verifies that origin cache-busting headers are
// rewritten so that responses are cached for the enforced TTL.
func TestHeaderOverrideTransport(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			hits++
			// origin explicitly forbids caching
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("Pragma", "no-cache")
			fmt.Fprint(w, "standings payload")
		}))
	defer srv.Close()

	maxAge := 5 * time.Minute
	hc := httpcache.NewTransport(httpcache.NewMemoryCache())
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: http.DefaultTransport,
		Response: func(resp *http.Response) error {
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			resp.Header.Set("Cache-Control",
				fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}
	client := &http.Client{Transport: hc}

	for i := 0; i < 3; i++ {
		req, err := http.NewRequest("GET", srv.URL, nil)
		if err != nil {
			t.Fatalf("unable to build request: %v", err)
		}
		req.Header.Set("User-Agent", internal.UserAgent)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("unable to fetch: %v", err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("failed to read response body: %v", err)
		}
		if len(data) == 0 {
			t.Errorf("empty data")
		}
		if i > 0 {
			if resp.Header.Get("X-From-Cache") != "1" {
				t.Errorf("object not cached on iteration %v", i)
			}
		}
	}

	if hits != 1 {
		t.Errorf("origin served %v requests; want 1", hits)
	}
}
