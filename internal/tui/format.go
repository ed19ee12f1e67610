package tui

import (
	"strings"
	"time"

	"github.com/akyairhashvil/sleeplog/internal/config"
	"github.com/charmbracelet/x/ansi"
	"github.com/shopspring/decimal"
)

// formatHours renders hours without float noise, e.g. 7.5 -> "7.5", 8 -> "8".
func formatHours(h float64) string {
	return decimal.NewFromFloat(h).String()
}

// parseHours accepts a plain decimal number. NaN and infinities are rejected.
func parseHours(raw string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	h, _ := d.Float64()
	return h, nil
}

// formatEntryDate shows the creation date in local time.
func formatEntryDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006")
}

// formatAxisDate is the short form used under the trend chart.
func formatAxisDate(t time.Time) string {
	return t.Local().Format("Jan 2")
}

// truncateLabel shortens text to max display cells, ANSI aware.
func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	if max <= len(config.TruncationSuffix) {
		return ansi.Truncate(text, max, "")
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// padBetween joins left and right with enough spaces to fill width.
func padBetween(left, right string, width int) string {
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
