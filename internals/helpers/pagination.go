package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParseLimitOffset reads ?limit= and ?offset= with sane bounds.
func ParseLimitOffset(c *fiber.Ctx) (limit, offset int) {
	limit = atoiOr(DefaultLimit, c.Query("limit"))
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset = atoiOr(0, c.Query("offset"))
	if offset < 0 {
		offset = 0
	}
	return
}

func atoiOr(def int, s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
