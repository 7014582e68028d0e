package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harish176/placement-portal/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// NormalizePage clamps page and limit into their valid ranges.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// CalculateSkipLimit converts a 1-based page into the skip/limit pair used by
// collection finds.
func CalculateSkipLimit(page, limit int) (skip int64, size int64) {
	page, limit = NormalizePage(page, limit)
	return int64((page - 1) * limit), int64(limit)
}

// NewPaginationInfo builds the pagination block returned with every list.
// hasMore is page*limit < total for every resource.
func NewPaginationInfo(total int64, page, limit int) dto.PaginationInfo {
	page, limit = NormalizePage(page, limit)

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return dto.PaginationInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    int64(page)*int64(limit) < total,
	}
}

// ParsePaginationParams extracts page and limit from the query string,
// falling back to defaults for missing or malformed values.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	if err != nil || limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return page, limit
}
