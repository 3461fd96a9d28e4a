/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent      = "nfl-seedbot/0.4.0 (+https://github.com/mikeb26/nfl-seedbot)"
	WebCacheBucket = "bopmatic-nfl-seedbot-prod-webcache"
	LogLevelEnvVar = "NFLSEED_LOG_LEVEL"
)
