/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mikeb26/nfl-seedbot/espn"
	"github.com/mikeb26/nfl-seedbot/internal"
)

// this program exists just to seed the http cache with espn responses

func main() {
	internal.InitLogLevel()
	ctx := context.Background()
	client := espn.NewClient(ctx)

	standings, err := client.GetStandings(ctx)
	if err != nil {
		// best effort
		return
	}
	fmt.Printf("seeded standings (%v teams)\n", len(standings))

	for _, ts := range standings {
		if ts.ID == "" {
			continue
		}
		_, err := client.GetSchedule(ctx, ts.ID)
		time.Sleep(2 * time.Second) // avoid pegging espn.com
		if err != nil {
			// best effort
			continue
		}

		fmt.Printf("seeded %v schedule\n", ts.Name)
	}
}
