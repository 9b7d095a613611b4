package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// parseDate parses an optional "yyyy-mm-dd" field. Empty input yields nil.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid date, expected yyyy-mm-dd")
	}
	return &t, nil
}
