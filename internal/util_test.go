/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestFormatWinPct(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"no games", 0, ".000"},
		{"all wins", 1, "1.000"},
		{"typical", 11.0 / 17.0, ".647"},
		{"half", 0.5, ".500"},
		{"rounding", 10.0 / 17.0, ".588"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatWinPct(tt.pct)
			if got != tt.want {
				t.Errorf("FormatWinPct(%v) = %q; want %q", tt.pct, got,
					tt.want)
			}
		})
	}
}

func TestFormatRecord(t *testing.T) {
	if got := FormatRecord(11, 6); got != "11-6" {
		t.Errorf("FormatRecord(11, 6) = %q; want %q", got, "11-6")
	}
	if got := FormatRecord(0, 0); got != "0-0" {
		t.Errorf("FormatRecord(0, 0) = %q; want %q", got, "0-0")
	}
}

func TestFormatSigned(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{92, "+92"},
		{-30, "-30"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FormatSigned(tt.n); got != tt.want {
			t.Errorf("FormatSigned(%d) = %q; want %q", tt.n, got, tt.want)
		}
	}
}

func TestParseDateOrZero(t *testing.T) {
	zero, err := ParseDateOrZero("")
	if err != nil {
		t.Fatalf("ParseDateOrZero(\"\") returned error: %v", err)
	}
	if !zero.IsZero() {
		t.Errorf("ParseDateOrZero(\"\") = %v; want zero time", zero)
	}

	zero, err = ParseDateOrZero("null")
	if err != nil {
		t.Fatalf("ParseDateOrZero(\"null\") returned error: %v", err)
	}
	if !zero.IsZero() {
		t.Errorf("ParseDateOrZero(\"null\") = %v; want zero time", zero)
	}

	got, err := ParseDateOrZero("2025-09-07T17:00Z")
	if err != nil {
		t.Fatalf("ParseDateOrZero returned error: %v", err)
	}
	want := time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDateOrZero = %v; want %v", got, want)
	}
}

func TestInitLogLevel(t *testing.T) {
	oldLevel := logrus.GetLevel()
	defer logrus.SetLevel(oldLevel)

	t.Setenv(LogLevelEnvVar, "debug")
	InitLogLevel()
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("InitLogLevel set level %v; want debug", logrus.GetLevel())
	}

	// unrecognized values leave the level untouched
	t.Setenv(LogLevelEnvVar, "notalevel")
	InitLogLevel()
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("InitLogLevel set level %v; want debug", logrus.GetLevel())
	}
}
