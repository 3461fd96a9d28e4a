/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/sirupsen/logrus"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// FormatRecord renders a win-loss record in the conventional "11-6" form.
func FormatRecord(wins, losses int) string {
	return fmt.Sprintf("%d-%d", wins, losses)
}

// FormatWinPct renders a winning percentage in the conventional 3 digit
// form, e.g. ".647" or "1.000".
func FormatWinPct(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', 3, 64)

	return strings.TrimPrefix(s, "0")
}

// FormatSigned renders an integer with an explicit sign on positive values,
// e.g. "+92" or "-30".
func FormatSigned(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return strconv.Itoa(n)
}

// InitLogLevel sets the process log level from LogLevelEnvVar when present.
func InitLogLevel() {
	lvlStr := os.Getenv(LogLevelEnvVar)
	if lvlStr == "" {
		return
	}
	lvl, err := logrus.ParseLevel(lvlStr)
	if err != nil {
		logrus.Warnf("ignoring unrecognized %v value %q: %v", LogLevelEnvVar,
			lvlStr, err)
		return
	}
	logrus.SetLevel(lvl)
}
