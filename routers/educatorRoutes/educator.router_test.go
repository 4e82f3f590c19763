package educatorRoutes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"edemy/backend"
	"edemy/config"
	controllers "edemy/controllers/educator"
	"edemy/database"
	"edemy/middleware"
	"edemy/models"
	"edemy/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEducatorBackend struct {
	mu            sync.Mutex
	submitted     map[string]interface{}
	thumbnailName string
	deleted       []string
	down          map[string]bool // paths answering with a non-JSON 503
}

func (f *fakeEducatorBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.down[r.URL.Path] {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	reply := func(v map[string]interface{}) {
		v["success"] = true
		_ = json.NewEncoder(w).Encode(v)
	}

	switch {
	case r.URL.Path == "/api/course/all":
		reply(map[string]interface{}{"courses": []models.Course{}})
	case r.URL.Path == "/api/user/educator":
		reply(map[string]interface{}{"educators": []models.Educator{}})
	case r.URL.Path == "/api/user/data":
		reply(map[string]interface{}{"user": models.User{ID: "edu_1", Name: "Grace"}})
	case r.URL.Path == "/api/user/enrolled-courses":
		reply(map[string]interface{}{"enrolledCourses": []models.Course{}})
	case r.URL.Path == "/api/educator/dashboard":
		reply(map[string]interface{}{"dashboardData": models.DashboardData{TotalEarnings: 150, TotalCourses: 1, TotalStudents: 2}})
	case r.URL.Path == "/api/educator/enrolled-students":
		reply(map[string]interface{}{"enrolledStudents": []models.EnrolledStudent{
			{Student: models.UserRef{ID: "s1", Name: "Sam"}, CourseTitle: "Go", PurchaseDate: "2024-05-01"},
		}})
	case r.URL.Path == "/api/educator/courses":
		reply(map[string]interface{}{"courses": []models.Course{{
			ID: "c1", CourseTitle: "Go", CoursePrice: 100, Discount: 25, IsPublished: true,
			EnrolledStudents: []models.UserRef{{ID: "s1"}, {ID: "s2"}},
		}}})
	case r.URL.Path == "/api/educator/add-course":
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": err.Error()})
			return
		}
		f.submitted = map[string]interface{}{}
		_ = json.Unmarshal([]byte(r.FormValue("courseData")), &f.submitted)
		if _, hdr, err := r.FormFile("image"); err == nil {
			f.thumbnailName = hdr.Filename
		}
		reply(map[string]interface{}{"message": "Course Added"})
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/course/"):
		f.deleted = append(f.deleted, strings.TrimPrefix(r.URL.Path, "/api/course/"))
		reply(map[string]interface{}{"message": "Course deleted"})
	default:
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Unknown endpoint"})
	}
}

type testEnv struct {
	app      *fiber.App
	fake     *fakeEducatorBackend
	educator string
	student  string
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	config.AppConfig = &config.Config{IdentitySecret: "test-secret"}

	fake := &fakeEducatorBackend{down: map[string]bool{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)

	client := backend.New(srv.URL, 2*time.Second)
	st := store.New(client, 2)
	require.NoError(t, st.LoadCatalog(context.Background()))

	app := fiber.New()
	SetupEducatorRoutes(app, st, controllers.New(st, client, database.NewDraftRepository(db), t.TempDir()))

	educator, err := middleware.GenerateIdentityToken("edu_1", "Grace", "grace@example.com", models.RoleEducator, time.Hour)
	require.NoError(t, err)
	student, err := middleware.GenerateIdentityToken("stu_1", "Sam", "sam@example.com", models.RoleStudent, time.Hour)
	require.NoError(t, err)

	return &testEnv{app: app, fake: fake, educator: educator, student: student}
}

func (e *testEnv) send(t *testing.T, req *http.Request, token string) (int, map[string]interface{}) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.send(t, req, e.educator)
}

func (e *testEnv) uploadThumbnail(t *testing.T, draftID, contentType string) (int, map[string]interface{}) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="thumb.png"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte("png-bytes"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/educator/drafts/"+draftID+"/thumbnail", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return e.send(t, req, e.educator)
}

func data(out map[string]interface{}) map[string]interface{} {
	d, _ := out["data"].(map[string]interface{})
	return d
}

func chapters(out map[string]interface{}) []interface{} {
	draft := data(out)["draft"].(map[string]interface{})
	list, _ := draft["courseContent"].([]interface{})
	return list
}

func chapterField(ch interface{}, key string) interface{} {
	return ch.(map[string]interface{})[key]
}

func TestStudentsCannotOpenConsole(t *testing.T) {
	env := setup(t)

	req := httptest.NewRequest("GET", "/api/educator/dashboard", nil)
	status, _ := env.send(t, req, env.student)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestDraftAuthoringAndSubmit(t *testing.T) {
	env := setup(t)

	status, out := env.do(t, "POST", "/api/educator/drafts", nil)
	require.Equal(t, http.StatusCreated, status)
	draftID := data(out)["draft_id"].(string)
	base := "/api/educator/drafts/" + draftID

	// blank chapter titles are ignored
	_, out = env.do(t, "POST", base+"/chapters", map[string]string{"chapterTitle": "  "})
	assert.Empty(t, chapters(out))

	_, _ = env.do(t, "POST", base+"/chapters", map[string]string{"chapterTitle": "Intro"})
	_, out = env.do(t, "POST", base+"/chapters", map[string]string{"chapterTitle": "Advanced"})
	list := chapters(out)
	require.Len(t, list, 2)
	introID := chapterField(list[0], "chapterId").(string)
	advancedID := chapterField(list[1], "chapterId").(string)

	status, out = env.do(t, "POST", base+"/chapters/"+advancedID+"/lectures", map[string]interface{}{
		"lectureTitle": "Channels", "lectureDuration": "15", "lectureUrl": "https://youtu.be/dQw4w9WgXcQ", "isPreviewFree": true,
	})
	require.Equal(t, http.StatusOK, status)

	status, out = env.do(t, "POST", base+"/chapters/"+advancedID+"/lectures", map[string]interface{}{
		"lectureTitle": "Broken", "lectureDuration": 0, "lectureUrl": "https://youtu.be/dQw4w9WgXcQ",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, data(out), "lectureDuration")

	status, out = env.do(t, "DELETE", base+"/chapters/"+introID, nil)
	require.Equal(t, http.StatusOK, status)
	list = chapters(out)
	require.Len(t, list, 1)
	assert.Equal(t, float64(1), chapterField(list[0], "chapterOrder"))
	lectures := chapterField(list[0], "chapterContent").([]interface{})
	require.Len(t, lectures, 1)
	assert.Equal(t, float64(15), lectures[0].(map[string]interface{})["lectureDuration"])
	assert.Equal(t, "15m", data(out)["total_duration"])

	status, out = env.do(t, "PUT", base, map[string]interface{}{
		"courseTitle": "Go in Depth", "courseDescription": "<p>deep</p>", "coursePrice": "100", "discount": 25,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "75.00", data(out)["effective_price"])

	status, out = env.do(t, "POST", base+"/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Thumbnail Not Selected", data(out)["image"])

	status, _ = env.uploadThumbnail(t, draftID, "text/plain")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	status, _ = env.uploadThumbnail(t, draftID, "image/png")
	require.Equal(t, http.StatusOK, status)

	status, _ = env.do(t, "POST", base+"/submit", nil)
	require.Equal(t, http.StatusCreated, status)

	env.fake.mu.Lock()
	submitted := env.fake.submitted
	thumbName := env.fake.thumbnailName
	env.fake.mu.Unlock()
	assert.Equal(t, "Go in Depth", submitted["courseTitle"])
	assert.Equal(t, float64(100), submitted["coursePrice"])
	assert.Len(t, submitted["courseContent"], 1)
	assert.True(t, strings.HasSuffix(thumbName, ".png"))

	status, _ = env.do(t, "GET", base, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRemoveLectureAndToggle(t *testing.T) {
	env := setup(t)

	_, out := env.do(t, "POST", "/api/educator/drafts", nil)
	base := "/api/educator/drafts/" + data(out)["draft_id"].(string)
	_, out = env.do(t, "POST", base+"/chapters", map[string]string{"chapterTitle": "Only"})
	chID := chapterField(chapters(out)[0], "chapterId").(string)

	for i := 1; i <= 3; i++ {
		status, _ := env.do(t, "POST", base+"/chapters/"+chID+"/lectures", map[string]interface{}{
			"lectureTitle": fmt.Sprintf("L%d", i), "lectureDuration": 5, "lectureUrl": "https://youtu.be/dQw4w9WgXcQ",
		})
		require.Equal(t, http.StatusOK, status)
	}

	status, out := env.do(t, "DELETE", base+"/chapters/"+chID+"/lectures/1", nil)
	require.Equal(t, http.StatusOK, status)
	lectures := chapterField(chapters(out)[0], "chapterContent").([]interface{})
	require.Len(t, lectures, 2)
	assert.Equal(t, "L3", lectures[1].(map[string]interface{})["lectureTitle"])
	assert.Equal(t, float64(2), lectures[1].(map[string]interface{})["lectureOrder"])

	status, out = env.do(t, "PATCH", base+"/chapters/"+chID+"/toggle", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, chapterField(chapters(out)[0], "collapsed"))

	status, _ = env.do(t, "DELETE", base+"/chapters/00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDashboardViews(t *testing.T) {
	env := setup(t)

	status, out := env.do(t, "GET", "/api/educator/dashboard", nil)
	require.Equal(t, http.StatusOK, status)
	dashboard := data(out)["dashboardData"].(map[string]interface{})
	assert.Equal(t, float64(2), dashboard["totalStudents"])

	_, out = env.do(t, "GET", "/api/educator/my-courses", nil)
	courses := data(out)["courses"].([]interface{})
	require.Len(t, courses, 1)
	assert.Equal(t, float64(150), courses[0].(map[string]interface{})["earnings"])
	assert.Equal(t, float64(2), courses[0].(map[string]interface{})["students"])

	_, out = env.do(t, "GET", "/api/educator/enrolled-students", nil)
	rows := data(out)["enrolledStudents"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-05-01", rows[0].(map[string]interface{})["enrolledDate"])

	status, _ = env.do(t, "DELETE", "/api/educator/course/c1", nil)
	require.Equal(t, http.StatusOK, status)
	env.fake.mu.Lock()
	assert.Equal(t, []string{"c1"}, env.fake.deleted)
	env.fake.mu.Unlock()
}

func TestDraftsWorkWhileDashboardIsDown(t *testing.T) {
	env := setup(t)
	env.fake.mu.Lock()
	env.fake.down["/api/educator/dashboard"] = true
	env.fake.mu.Unlock()

	status, out := env.do(t, "POST", "/api/educator/drafts", nil)
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, data(out)["draft_id"])

	status, _ = env.do(t, "GET", "/api/educator/my-courses", nil)
	assert.Equal(t, http.StatusOK, status)

	status, out = env.do(t, "GET", "/api/educator/dashboard", nil)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, false, out["success"])

	env.fake.mu.Lock()
	delete(env.fake.down, "/api/educator/dashboard")
	env.fake.mu.Unlock()

	status, out = env.do(t, "GET", "/api/educator/dashboard", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), data(out)["dashboardData"].(map[string]interface{})["totalStudents"])
}
