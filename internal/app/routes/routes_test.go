package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/harish176/placement-portal/internal/app/controllers"
	"github.com/harish176/placement-portal/internal/app/models"
	"github.com/harish176/placement-portal/internal/middleware"
	pkgAuth "github.com/harish176/placement-portal/internal/pkg/auth"
)

type rejectAll struct{}

func (rejectAll) VerifyAccess(string) (*pkgAuth.AccessClaims, error) {
	return nil, errors.New("invalid")
}

func (rejectAll) LoadAccount(context.Context, string, models.Role) (*models.Account, error) {
	return nil, errors.New("unreachable")
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRouter(r, Controllers{
		Health:    controllers.NewHealthController(nil),
		Auth:      controllers.NewAuthController(nil, zerolog.Nop()),
		Student:   controllers.NewStudentController(nil),
		Faculty:   controllers.NewFacultyController(nil),
		Company:   controllers.NewCompanyController(nil),
		Placement: controllers.NewPlacementController(nil),
		TPCMember: controllers.NewTPCMemberController(nil),
	}, middleware.NewAuthMiddleware(rejectAll{}, rejectAll{}), nil)
	return r
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter()
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodGet, "/api/students"},
		{http.MethodGet, "/api/students/abc/placements"},
		{http.MethodPatch, "/api/faculty/abc/status"},
		{http.MethodGet, "/api/companies"},
		{http.MethodGet, "/api/placements/stats"},
		{http.MethodPost, "/api/tpc-members"},
		{http.MethodDelete, "/api/companies/abc/yearly-data/2024"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestPublicRoutes(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
