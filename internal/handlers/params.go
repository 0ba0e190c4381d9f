package handlers

import (
	"strconv"
	"strings"

	"storefront/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

const msgNumericID = "Validation failed (numeric string is expected)"

// strictID parses the :id parameter as an optionally negative base-10
// integer and rejects anything else, including a leading '+', with a 400.
// Non-positive ids parse but match nothing.
func strictID(c *fiber.Ctx) (uint, error) {
	s := c.Params("id")
	if strings.HasPrefix(s, "+") {
		return 0, apperror.Validation(msgNumericID)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, apperror.Validation(msgNumericID)
	}
	if n <= 0 {
		return 0, nil
	}
	return uint(n), nil
}

// looseID reads the leading integer of the :id parameter ("12abc" is 12).
// ok is false when there is none, in which case no record can match.
func looseID(c *fiber.Ctx) (id uint, ok bool) {
	s := strings.TrimSpace(c.Params("id"))
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || negative {
		return 0, false
	}
	n, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
