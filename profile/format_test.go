package profile

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	require.Equal(t, "01/05/2024", FormatDate("2024-05-01"))
	require.Equal(t, "01/05/2024", FormatDate("2024-05-01T00:00:00Z"))
	require.Empty(t, FormatDate(""))
	require.Empty(t, FormatDate("yesterday"))
}

func TestParseDate_Location(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	got, ok := ParseDate("2024-05-01", loc)
	require.True(t, ok)
	require.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, loc), got)
}

func TestFormatTimeRange(t *testing.T) {
	require.Equal(t, "19:00-21:15", FormatTimeRange("19:00:00", "21:15:00"))
	require.Equal(t, "19:00", FormatTimeRange("19:00", ""))
	require.Empty(t, FormatTimeRange("", ""))
}

func TestFormatPrice(t *testing.T) {
	got := FormatPrice(TicketPrice)
	require.Regexp(t, regexp.MustCompile(`^50\D000 ₫$`), got)

	require.Regexp(t, regexp.MustCompile(`^0 ₫$`), FormatPrice(decimal.Zero))
}
