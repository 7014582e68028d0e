// Package controllers handles HTTP request handling
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harish176/placement-portal/internal/middleware"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	"github.com/harish176/placement-portal/internal/pkg/helpers"
)

// bindList binds a list filter from the query string and returns the page
// window. Malformed page or limit values fall back to the defaults.
func bindList(ctx *gin.Context, filter interface{}) (page, limit int, err error) {
	if err := middleware.BindQuery(ctx, filter); err != nil {
		return 0, 0, err
	}
	page, limit = helpers.ParsePaginationParams(ctx)
	return page, limit, nil
}

func yearParam(ctx *gin.Context) (int, error) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		return 0, apperrors.NewFieldError("year", "must be a number")
	}
	return year, nil
}

func optionalIntQuery(ctx *gin.Context, key string) (*int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewFieldError(key, "must be a number")
	}
	return &v, nil
}
