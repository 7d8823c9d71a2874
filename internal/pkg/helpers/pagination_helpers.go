package helpers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/buddybridge/backend/internal/pkg/apperrors"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// Sort directions accepted by list endpoints
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// NormalizePage clamps a 1-based page number; zero and negative pages mean
// page 1.
func NormalizePage(page int) int {
	if page < DefaultPage {
		return DefaultPage
	}
	return page
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	page = NormalizePage(page)

	offset = uint64((page - 1) * limit)
	return offset, limit
}

// ParseSortDirection parses a sort parameter case-insensitively into ASC or
// DESC. Anything else is an invalid sort method.
func ParseSortDirection(sort string) (string, error) {
	switch strings.ToUpper(sort) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", apperrors.NewCustomError(apperrors.ErrInvalidSortDirection, "invalid sort method: "+sort)
	}
}

// TotalPages computes ceil(totalItems / size).
func TotalPages(totalItems int64, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	return int(math.Ceil(float64(totalItems) / float64(size)))
}

// IsLastPage reports whether the requested 1-based page is the final one.
// The comparison uses the page number the caller asked for, not the index
// of the fetched page.
func IsLastPage(page int, totalItems int64, size int) bool {
	return NormalizePage(page) >= TotalPages(totalItems, size)
}

// ParsePaginationParams extracts and validates pagination parameters from the request
func ParsePaginationParams(c *gin.Context) (page, size int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = DefaultPage
	}

	sizeStr := c.DefaultQuery("size", "10")
	size, err = strconv.Atoi(sizeStr)
	if err != nil || size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}

	return page, size
}
