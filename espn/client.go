/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package espn

import (
	"context"
	"net/http"
	"time"

	"github.com/mikeb26/nfl-seedbot/internal/httpcache"
)

const (
	defaultApiBase  = "https://site.web.api.espn.com"
	defaultSiteBase = "https://site.api.espn.com"
	defaultWebBase  = "https://www.espn.com"
)

type Client struct {
	// standings and schedules move on game days; the public standings
	// page is only scraped for league memberships, which don't
	httpClient6hr  *http.Client
	httpClient24hr *http.Client

	apiBase  string
	siteBase string
	webBase  string
}

func NewClient(ctx context.Context) *Client {
	ret := &Client{
		apiBase:  defaultApiBase,
		siteBase: defaultSiteBase,
		webBase:  defaultWebBase,
	}
	ret.httpClient6hr = httpcache.NewCachedHttpClient(ctx, 6*time.Hour)
	if ret.httpClient6hr != http.DefaultClient {
		ret.httpClient24hr = httpcache.NewCachedHttpClient(ctx, 24*time.Hour)
	} else {
		ret.httpClient24hr = http.DefaultClient
	}

	return ret
}
