package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		limit     int
		wantPages int
		wantMore  bool
		wantLimit int
	}{
		{name: "empty", total: 0, page: 1, limit: 10, wantPages: 0, wantMore: false, wantLimit: 10},
		{name: "first of three", total: 25, page: 1, limit: 10, wantPages: 3, wantMore: true, wantLimit: 10},
		{name: "last partial page", total: 25, page: 3, limit: 10, wantPages: 3, wantMore: false, wantLimit: 10},
		{name: "exact boundary", total: 20, page: 2, limit: 10, wantPages: 2, wantMore: false, wantLimit: 10},
		{name: "past the end", total: 5, page: 4, limit: 10, wantPages: 1, wantMore: false, wantLimit: 10},
		{name: "limit clamped", total: 500, page: 1, limit: 1000, wantPages: 5, wantMore: true, wantLimit: 100},
		{name: "zero page normalised", total: 11, page: 0, limit: 10, wantPages: 2, wantMore: true, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.wantPages, info.TotalPages)
			assert.Equal(t, tt.wantMore, info.HasMore)
			assert.Equal(t, tt.wantLimit, info.Limit)
			assert.Equal(t, tt.total, info.Total)
			assert.Equal(t, int64(info.Page)*int64(info.Limit) < info.Total, info.HasMore)
		})
	}
}

func TestCalculateSkipLimit(t *testing.T) {
	skip, limit := CalculateSkipLimit(3, 20)
	assert.Equal(t, int64(40), skip)
	assert.Equal(t, int64(20), limit)

	skip, limit = CalculateSkipLimit(-1, 0)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(DefaultPageSize), limit)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{query: "", wantPage: 1, wantLimit: 10},
		{query: "page=2&limit=25", wantPage: 2, wantLimit: 25},
		{query: "page=abc&limit=-4", wantPage: 1, wantLimit: 10},
		{query: "page=1&limit=500", wantPage: 1, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/api/students?"+tt.query, nil)

			page, limit := ParsePaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
