package pdf

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"techforge-backend/utils"
)

// Indonesian month names, indexed by time.Month.
var monthNames = [...]string{
	"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatIDR renders a rupiah amount the way Intl.NumberFormat("id-ID")
// does for IDR: "Rp" prefix, dot thousands separators, no decimals.
// Amounts are rounded to the whole rupiah before grouping.
func FormatIDR(amount float64) string {
	n := int64(utils.RoundIDR(math.Abs(amount)))
	s := strconv.FormatInt(n, 10)

	grouped := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		grouped = append(grouped, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(grouped) > 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, s[i:i+3]...)
	}

	if amount < 0 && n != 0 {
		return "-Rp " + string(grouped)
	}
	return "Rp " + string(grouped)
}

// FormatDateLong renders "d MMMM yyyy" in Indonesian with an unpadded day,
// e.g. "5 Agustus 2024".
func FormatDateLong(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()], t.Year())
}

// FormatTimestamp renders "d MMMM yyyy HH:mm" for the generation footer.
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%s %02d:%02d", FormatDateLong(t), t.Hour(), t.Minute())
}

// FormatDateCompact renders "yyyyMMdd" for filenames.
func FormatDateCompact(t time.Time) string {
	return t.Format("20060102")
}
