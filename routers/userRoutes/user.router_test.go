package userProfileRoutes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"edemy/backend"
	"edemy/config"
	userController "edemy/controllers/userControllers"
	"edemy/middleware"
	"edemy/models"
	"edemy/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, roleUpdates *int32) (*fiber.App, string) {
	t.Helper()
	config.AppConfig = &config.Config{IdentitySecret: "test-secret"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{"success": true}
		switch r.URL.Path {
		case "/api/course/all":
			body["courses"] = []models.Course{{ID: "c1"}}
		case "/api/user/educator":
			body["educators"] = []models.Educator{}
		case "/api/user/data":
			body["user"] = models.User{ID: "user_1", Name: "Ada", EnrolledCourses: []string{"c1"}}
		case "/api/user/enrolled-courses":
			body["enrolledCourses"] = []models.Course{{ID: "c1"}}
		case "/api/educator/update-role":
			atomic.AddInt32(roleUpdates, 1)
		default:
			body = map[string]interface{}{"success": false, "message": "Unknown endpoint"}
		}
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	client := backend.New(srv.URL, 2*time.Second)
	st := store.New(client, 1)
	require.NoError(t, st.LoadCatalog(context.Background()))

	app := fiber.New()
	SetupUserRoutes(app, st, userController.New(st, client))

	token, err := middleware.GenerateIdentityToken("user_1", "Ada", "ada@example.com", models.RoleStudent, time.Hour)
	require.NoError(t, err)
	return app, token
}

func call(t *testing.T, app *fiber.App, method, path, token string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestMeLoadsUserOnLogin(t *testing.T) {
	var updates int32
	app, token := setup(t, &updates)

	status, out := call(t, app, "GET", "/api/user/me", token)
	require.Equal(t, http.StatusOK, status)
	data := out["data"].(map[string]interface{})
	assert.Equal(t, "Ada", data["user"].(map[string]interface{})["name"])
	assert.Equal(t, float64(1), data["enrolled_courses"])
	assert.Equal(t, false, data["is_educator"])
}

func TestBecomeEducator(t *testing.T) {
	var updates int32
	app, token := setup(t, &updates)

	status, out := call(t, app, "POST", "/api/user/become-educator", token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, out["data"].(map[string]interface{})["token_refresh"])
	assert.Equal(t, int32(1), atomic.LoadInt32(&updates))
}

func TestRefresh(t *testing.T) {
	var updates int32
	app, token := setup(t, &updates)

	status, out := call(t, app, "POST", "/api/refresh", token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, out["success"])
}
