package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"intervia/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page  int
	Limit int
}

// ValidatePagination validates and normalizes pagination parameters.
// Page defaults to DefaultPage if less than 1. Limit defaults to
// DefaultPageSize if less than 1 and is capped at MaxPageSize: the legacy
// dashboard accepted any limit, which is a resource-exhaustion hazard.
func ValidatePagination(page, limit int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}

	if limit < 1 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}

	return Pagination{Page: page, Limit: limit}
}

// ParsePagination parses page and limit from the Gin query string, with
// defaults and the cap applied. The legacy dashboard uses "page" and "limit"
// parameter names.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	limit := parseQueryInt(c, "limit", constants.DefaultPageSize)
	return ValidatePagination(page, limit)
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// Offset converts the page number to a row offset.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, limit int) int {
	if total == 0 || limit == 0 {
		return 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages == 0 {
		return 1
	}
	return pages
}
