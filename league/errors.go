/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"errors"
	"fmt"
	"strings"
)

// DataIntegrityError indicates the supplied inputs contradict themselves or
// the league structure: unknown team references, conflicting membership
// metadata, or impossible record counts.
type DataIntegrityError struct {
	Team   string
	Detail string
}

func (e *DataIntegrityError) Error() string {
	if e.Team != "" {
		return fmt.Sprintf("standings integrity: team %v: %v", e.Team, e.Detail)
	}
	return fmt.Sprintf("standings integrity: %v", e.Detail)
}

// AsDataIntegrityError returns the wrapped *DataIntegrityError when err
// contains one.
func AsDataIntegrityError(err error) (*DataIntegrityError, bool) {
	var diErr *DataIntegrityError
	if errors.As(err, &diErr) {
		return diErr, true
	}
	return nil, false
}

// UnresolvedTieError indicates every tiebreak criterion was exhausted with
// two or more teams still tied. The engine never invents an order; callers
// choose the fallback policy.
type UnresolvedTieError struct {
	Teams []string
}

func (e *UnresolvedTieError) Error() string {
	return fmt.Sprintf("tiebreak criteria exhausted; still tied: %v",
		strings.Join(e.Teams, ", "))
}

// AsUnresolvedTieError returns the wrapped *UnresolvedTieError when err
// contains one.
func AsUnresolvedTieError(err error) (*UnresolvedTieError, bool) {
	var tieErr *UnresolvedTieError
	if errors.As(err, &tieErr) {
		return tieErr, true
	}
	return nil, false
}

// IncompleteLeagueDataError indicates a conference's playoff bracket cannot
// be filled from the supplied teams.
type IncompleteLeagueDataError struct {
	Conference string
	Detail     string
}

func (e *IncompleteLeagueDataError) Error() string {
	return fmt.Sprintf("incomplete league data for %v: %v", e.Conference,
		e.Detail)
}

// AsIncompleteLeagueDataError returns the wrapped
// *IncompleteLeagueDataError when err contains one.
func AsIncompleteLeagueDataError(err error) (*IncompleteLeagueDataError, bool) {
	var ilErr *IncompleteLeagueDataError
	if errors.As(err, &ilErr) {
		return ilErr, true
	}
	return nil, false
}
