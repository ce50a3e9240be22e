package routes_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siswaku_backend/internals/docstore"
	routes "siswaku_backend/internals/route"
)

type envelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	RawData rawJSON `json:"data"`
	Count   int     `json:"count"`
}

type rawJSON []byte

func (r *rawJSON) UnmarshalJSON(b []byte) error {
	*r = append((*r)[:0], b...)
	return nil
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	routes.SetupRoutes(app, docstore.NewMemoryStore())
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		_ = sonic.Unmarshal(raw, &env)
	}
	return resp, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NotEmpty(t, []byte(env.RawData))
	require.NoError(t, sonic.Unmarshal(env.RawData, out))
}

func createStudent(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/students", fiber.Map{
		"first_name":  "Siti",
		"last_name":   "Rahma",
		"roll_number": "2024-007",
		"class_name":  "XI-IPS",
		"year":        2024,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var data struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &data)
	require.NotEmpty(t, data.ID)
	return data.ID
}

func createCourse(t *testing.T, app *fiber.App, code string, credits float64) string {
	t.Helper()
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/courses", fiber.Map{
		"code":    code,
		"title":   "Course " + code,
		"credits": credits,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var data struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &data)
	return data.ID
}

func TestCreateAndListStudents(t *testing.T) {
	app := newTestApp()
	id := createStudent(t, app)

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/students", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, env.Count)

	var students []struct {
		ID         string `json:"id"`
		RollNumber string `json:"roll_number"`
	}
	decodeData(t, env, &students)
	require.Len(t, students, 1)
	assert.Equal(t, id, students[0].ID)
	assert.Equal(t, "2024-007", students[0].RollNumber)
}

func TestCreateStudentValidation(t *testing.T) {
	app := newTestApp()

	// year di luar rentang 1900-2100
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/students", fiber.Map{
		"first_name":  "Siti",
		"last_name":   "Rahma",
		"roll_number": "2024-007",
		"class_name":  "XI-IPS",
		"year":        1800,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestCreateResultFlow(t *testing.T) {
	app := newTestApp()
	studentID := createStudent(t, app)
	courseID := createCourse(t, app, "MATH101", 3)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/results", fiber.Map{
		"student_id": studentID,
		"course_id":  courseID,
		"marks":      95,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var data struct {
		ID         string  `json:"id"`
		Grade      string  `json:"grade"`
		GradePoint float64 `json:"grade_point"`
	}
	decodeData(t, env, &data)
	assert.NotEmpty(t, data.ID)
	assert.Equal(t, "A+", data.Grade)
	assert.Equal(t, 10.0, data.GradePoint)

	// list terfilter per student ikut memuat result baru
	resp, env = doJSON(t, app, fiber.MethodGet, "/api/results?student_id="+studentID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, env.Count)
}

func TestCreateResultMarksRejected(t *testing.T) {
	app := newTestApp()
	studentID := createStudent(t, app)
	courseID := createCourse(t, app, "MATH101", 3)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/results", fiber.Map{
		"student_id": studentID,
		"course_id":  courseID,
		"marks":      101,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateResultUnknownRefs(t *testing.T) {
	app := newTestApp()
	studentID := createStudent(t, app)

	// course valid format tapi tidak ada
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/results", fiber.Map{
		"student_id": studentID,
		"course_id":  "0e4cbb50-1111-4222-8333-444455556666",
		"marks":      70,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// student_id bukan uuid → ditolak validator
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/results", fiber.Map{
		"student_id": "bukan-uuid",
		"course_id":  "0e4cbb50-1111-4222-8333-444455556666",
		"marks":      70,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestTranscriptEndpoint(t *testing.T) {
	app := newTestApp()
	studentID := createStudent(t, app)
	mathID := createCourse(t, app, "MATH101", 3)
	bioID := createCourse(t, app, "BIO102", 2)

	for _, r := range []fiber.Map{
		{"student_id": studentID, "course_id": mathID, "marks": 95},
		{"student_id": studentID, "course_id": bioID, "marks": 65},
	} {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/results", r)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/students/"+studentID+"/transcript", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Student struct {
			ID         string `json:"id"`
			RollNumber string `json:"roll_number"`
		} `json:"student"`
		GPA     float64 `json:"gpa"`
		Results []struct {
			CourseCode string  `json:"course_code"`
			GradePoint float64 `json:"grade_point"`
		} `json:"results"`
	}
	decodeData(t, env, &data)
	assert.Equal(t, studentID, data.Student.ID)
	assert.Equal(t, 8.8, data.GPA)
	require.Len(t, data.Results, 2)
}

func TestTranscriptNotFoundAndBadID(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/students/0e4cbb50-1111-4222-8333-444455556666/transcript", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/students/bukan-uuid/transcript", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBaseRoutes(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, fiber.MethodGet, "/", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/test", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
