package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{1, "Rp 1"},
		{999, "Rp 999"},
		{1_000, "Rp 1.000"},
		{110_000, "Rp 110.000"},
		{1_000_000, "Rp 1.000.000"},
		{1_110_000, "Rp 1.110.000"},
		{1_234_567_890, "Rp 1.234.567.890"},
		{110_000.11, "Rp 110.000"}, // rounded to the whole rupiah
		{110_000.5, "Rp 110.001"},
		{-50_000, "-Rp 50.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatIDR(tt.amount), "amount %v", tt.amount)
	}
}

func TestFormatDateLong(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "10 Januari 2025"},
		{time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC), "5 Agustus 2024"},
		{time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), "1 Agustus 2024"},
		{time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), "31 Desember 2023"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDateLong(tt.date))
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 1, 10, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, "10 Januari 2025 14:05", FormatTimestamp(ts))
}

func TestFormatDateCompact(t *testing.T) {
	assert.Equal(t, "20250110", FormatDateCompact(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)))
}
