package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"wukala/models"
	"wukala/services/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeSessionService resolves handles from a fixed map.
type fakeSessionService struct {
	records map[string]*models.SessionRecord
}

func (f *fakeSessionService) NewHandle() string { return "h-new" }

func (f *fakeSessionService) SignIn(handle, name, email string) *models.SessionRecord {
	return f.records[handle]
}

func (f *fakeSessionService) SignOut(handle string) {}

func (f *fakeSessionService) Current(handle string) *models.SessionRecord {
	return f.records[handle]
}

func (f *fakeSessionService) IsAuthenticated(handle string) bool {
	return f.records[handle] != nil
}

func (f *fakeSessionService) MarkOnboardingSeen(handle string) {}

func (f *fakeSessionService) HasSeenOnboarding(handle string) bool { return false }

var _ session.SessionService = (*fakeSessionService)(nil)

func newAdminRouter(svc session.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware(svc))
	admin := r.Group("/admin")
	admin.Use(RequireAdmin())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func adminRequest(r *gin.Engine, handle string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if handle != "" {
		req.Header.Set(SessionHeader, handle)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdminWithoutHandle(t *testing.T) {
	r := newAdminRouter(&fakeSessionService{})

	w := adminRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRedirectsResolvedNonAdmin(t *testing.T) {
	r := newAdminRouter(&fakeSessionService{records: map[string]*models.SessionRecord{
		"h-client": {ID: "u1", Email: "ali@example.com", Role: models.RoleClient},
		"h-lawyer": {ID: "u2", Email: "hira@example.com", Role: models.RoleLawyer, Status: models.StatusApproved},
	}})

	for _, handle := range []string{"h-client", "h-lawyer"} {
		w := adminRequest(r, handle)
		assert.Equal(t, http.StatusSeeOther, w.Code, handle)
		assert.Equal(t, "/", w.Header().Get("Location"), handle)
	}
}

func TestRequireAdminUnresolvedHandleNotRedirected(t *testing.T) {
	// A handle whose record cannot be resolved is rejected, never bounced.
	r := newAdminRouter(&fakeSessionService{})

	w := adminRequest(r, "h-unknown")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	r := newAdminRouter(&fakeSessionService{records: map[string]*models.SessionRecord{
		"h-admin": {ID: "u3", Email: "admin@wukala.pk", Role: models.RoleAdmin},
	}})

	w := adminRequest(r, "h-admin")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionMiddlewareUnknownHandlePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware(&fakeSessionService{}))
	r.GET("/public", func(c *gin.Context) {
		_, hasRecord := c.Get("sessionRecord")
		handle, _ := c.Get("sessionHandle")
		c.JSON(http.StatusOK, gin.H{"hasRecord": hasRecord, "handle": handle})
	})

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set(SessionHeader, "h-unknown")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hasRecord":false`)
	assert.Contains(t, w.Body.String(), `"handle":"h-unknown"`)
}
