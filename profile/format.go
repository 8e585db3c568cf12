package profile

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DisplayDateLayout = "02/01/2006"
	currencySymbol    = "₫"
)

// TicketPrice is the flat per-ticket price in VND. The API exposes no pricing,
// so every ticket is shown at this amount.
var TicketPrice = decimal.NewFromInt(50_000)

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses an API date in loc. Date-only values are midnight in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an API date as dd/mm/yyyy, or "" when it does not parse.
func FormatDate(raw string) string {
	t, ok := ParseDate(raw, time.UTC)
	if !ok {
		return ""
	}
	return t.Format(DisplayDateLayout)
}

// FormatTimeRange renders "HH:MM-HH:MM" from API times, dropping seconds.
func FormatTimeRange(start, end string) string {
	start, end = shortTime(start), shortTime(end)
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	}
	return start + "-" + end
}

func shortTime(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04")
		}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format("15:04")
	}
	return raw
}

var vndPrinter = message.NewPrinter(language.Vietnamese)

// FormatPrice renders an amount of Vietnamese dong with local digit grouping.
func FormatPrice(amount decimal.Decimal) string {
	whole := amount.Round(0).IntPart()
	return vndPrinter.Sprint(number.Decimal(whole)) + " " + currencySymbol
}
