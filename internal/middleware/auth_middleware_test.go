package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rawad/acadex/internal/app/models"
	"github.com/rawad/acadex/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "acadex.test",
	})
}

func protectedRouter(m *AuthMiddleware, roles ...models.Role) *gin.Engine {
	router := gin.New()
	handlers := []gin.HandlerFunc{m.JWTAuth()}
	if len(roles) > 0 {
		handlers = append(handlers, RoleRequired(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": id, "role": string(role)})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := protectedRouter(NewAuthMiddleware(newJWTService(time.Hour)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := newJWTService(time.Hour)
	router := protectedRouter(NewAuthMiddleware(jwtService))

	token, _, err := jwtService.GenerateToken(&models.User{ID: 7, Username: "amal", Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := newJWTService(-time.Minute)
	router := protectedRouter(NewAuthMiddleware(expired))

	token, _, err := expired.GenerateToken(&models.User{ID: 7, Username: "amal", Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRoleRequired(t *testing.T) {
	jwtService := newJWTService(time.Hour)

	tests := []struct {
		name       string
		userRole   models.Role
		allowed    []models.Role
		wantStatus int
	}{
		{name: "exact role allowed", userRole: models.RoleDoctor, allowed: []models.Role{models.RoleDoctor}, wantStatus: http.StatusOK},
		{name: "one of several", userRole: models.RoleAdmin, allowed: []models.Role{models.RoleAdmin, models.RoleSuperAdmin}, wantStatus: http.StatusOK},
		{name: "role not in set", userRole: models.RoleStudent, allowed: []models.Role{models.RoleDoctor}, wantStatus: http.StatusForbidden},
		{name: "superadmin is not admin", userRole: models.RoleSuperAdmin, allowed: []models.Role{models.RoleAdmin}, wantStatus: http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := protectedRouter(NewAuthMiddleware(jwtService), tc.allowed...)

			token, _, err := jwtService.GenerateToken(&models.User{ID: 1, Username: "amal", Role: tc.userRole})
			if err != nil {
				t.Fatalf("GenerateToken() error: %v", err)
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}

func TestRoleRequired_NoAuthContext(t *testing.T) {
	router := gin.New()
	router.GET("/protected", RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
