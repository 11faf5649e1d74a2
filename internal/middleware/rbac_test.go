package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
)

func TestRequireRolesAllowsListedRole(t *testing.T) {
	router := protectedRouter(RequireRoles(models.RoleAdmin, models.RoleSuperAdmin))
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, models.RoleAdmin, time.Hour))
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d body: %s", recorder.Code, recorder.Body.String())
	}
}

func TestRequireRolesRejectsOtherRole(t *testing.T) {
	router := protectedRouter(RequireRoles(models.RoleSuperAdmin))
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, models.RoleAdmin, time.Hour))
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
}

func TestRequireRolesWithoutClaims(t *testing.T) {
	// Mounted without the JWT middleware nothing sets the claims.
	router := newBareRouter(RequireRoles(models.RoleAdmin))
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
}
