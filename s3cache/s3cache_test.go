/* Copyright (c) 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 */
package s3cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/gregjones/httpcache/test"

	"github.com/mikeb26/nfl-seedbot/internal"
)

func TestS3Cache(t *testing.T) {
	// Initialize S3-backed cache
	cache := New(context.Background(), internal.WebCacheBucket, false, true)
	err := cache.Init()
	if err != nil {
		t.Skip(fmt.Sprintf("Skipping test due to lack of access to %v: %v",
			internal.WebCacheBucket, err))
	}

	test.Cache(t, cache)
}

func TestS3CacheWithGzip(t *testing.T) {
	// Initialize S3-backed cache
	cache := New(context.Background(), internal.WebCacheBucket, true, true)
	err := cache.Init()
	if err != nil {
		t.Skip(fmt.Sprintf("Skipping test due to lack of access to %v: %v",
			internal.WebCacheBucket, err))
	}

	test.Cache(t, cache)
}

func TestCacheKeyToObjectKey(t *testing.T) {
	plain := New(context.Background(), "bucket", false, false)
	gzipped := New(context.Background(), "bucket", true, false)

	key := "https://site.web.api.espn.com/apis/v2/sports/football/nfl/standings"
	objKey := plain.cacheKeyToObjectKey(key)
	if objKey == "" {
		t.Fatal("expected non-empty object key")
	}
	// identical inputs must map to identical keys
	if objKey != plain.cacheKeyToObjectKey(key) {
		t.Error("object key not deterministic")
	}
	gzKey := gzipped.cacheKeyToObjectKey(key)
	if gzKey == objKey {
		t.Error("gzip object key should differ from plain object key")
	}
}
