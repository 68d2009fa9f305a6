package restds

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masomo-lms/portal/core"
	"github.com/masomo-lms/portal/core/contenttype"
	"github.com/masomo-lms/portal/core/course"
	"github.com/masomo-lms/portal/core/portal"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	auth   string
	body   string
}

func newBackend(t *testing.T, routes map[string]string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		defer mu.Unlock()
		reqs = append(reqs, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			auth:   r.Header.Get("Authorization"),
			body:   string(body),
		})
		switch r.URL.Path {
		case "/api/slow":
			<-r.Context().Done()
			return
		case "/api/boom":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
			return
		}
		if res, ok := routes[r.Method+" "+r.URL.Path]; ok {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(res))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &reqs
}

func newDataSource(t *testing.T, srv *httptest.Server) portal.DataSource {
	t.Helper()
	ds, err := NewDataSource(core.DataSourceConfig{
		Mode:    core.DataSourceREST,
		BaseURL: srv.URL + "/api",
		Token:   "s3cr3t",
		Timeout: time.Second,
	})
	require.NoError(t, err)
	return ds
}

func TestNewDataSource(t *testing.T) {
	_, err := NewDataSource(core.DataSourceConfig{})
	assert.Error(t, err)

	ds, err := NewDataSource(core.DataSourceConfig{BaseURL: "http://backend"})
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, ds.(*dataSource).client.HTTPClient.Timeout)
}

func TestDataSource_reads(t *testing.T) {
	srv, reqs := newBackend(t, map[string]string{
		"GET /api/users/1":               `{"id": 1, "fullName": "Grace Mbuyi", "gpa": null}`,
		"GET /api/enrollments/student/1": `[{"id": 1, "courseId": 101, "status": "APPROVED"}]`,
		"GET /api/courses/available":     `[{"id": 101, "code": "SWER301"}, {"id": 102}]`,
		"GET /api/courses/101":           `{"id": 101, "title": "Software Design"}`,
		"GET /api/courses/101/modules":   `[{"id": 1001, "title": "Foundations"}]`,
		"GET /api/modules/1001/items":    `[{"id": 5001, "type": "VIDEO"}]`,
	})
	ds := newDataSource(t, srv)
	ctx := context.Background()

	usr, err := ds.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Grace Mbuyi", usr.FullName.String)
	assert.False(t, usr.GPA.Valid)

	enrollments, err := ds.ListEnrollments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, "APPROVED", enrollments[0].Status.String)

	available, err := ds.ListAvailableCourses(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, available, 2)

	crs, err := ds.GetCourse(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, "Software Design", crs.Title.String)

	modules, err := ds.ListModules(ctx, 101)
	require.NoError(t, err)
	require.Len(t, modules, 1)

	items, err := ds.ListModuleItems(ctx, 1001)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "VIDEO", items[0].Type.String)

	require.Len(t, *reqs, 6)
	for _, r := range *reqs {
		assert.Equal(t, http.MethodGet, r.method)
		assert.Equal(t, "Bearer s3cr3t", r.auth)
	}
	assert.Equal(t, "studentId=1", (*reqs)[2].query)
}

func TestDataSource_errors(t *testing.T) {
	srv, _ := newBackend(t, map[string]string{
		"GET /api/courses/7/statistics": `{"averageCompletionPercentage": "lots"}`,
	})
	ds := newDataSource(t, srv)
	ctx := context.Background()

	_, err := ds.GetCourse(ctx, 404)
	assert.Equal(t, portal.ErrNotFound, err)

	_, err = ds.GetCourseStatistics(ctx, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding GET /courses/7/statistics")

	err = ds.(*dataSource).get(ctx, "/boom", nil, nil)
	require.Error(t, err)
	statusErr, ok := err.(*StatusError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, "upstream down", statusErr.Body)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ds.GetUser(cancelled, 1)
	require.Error(t, err)
	assert.NotEqual(t, portal.ErrNotFound, err)
}

func TestDataSource_contextDeadline(t *testing.T) {
	srv, reqs := newBackend(t, nil)
	ds := newDataSource(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := ds.(*dataSource).get(ctx, "/slow", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second, "gives up before the client timeout")
	assert.Len(t, *reqs, 1)
}

func TestDataSource_gradeShapes(t *testing.T) {
	srv, _ := newBackend(t, map[string]string{
		"GET /api/courses/completed": `[
			{"id": 1, "code": "MED1", "progress": 100, "grade": 92},
			{"id": 2, "code": "PHIL1", "progress": 100, "grade": "B+"},
			{"id": 3, "code": "RELS1", "progress": 100, "grade": null}
		]`,
	})
	ds := newDataSource(t, srv)

	completed, err := ds.ListCompletedCourses(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, completed, 3)
	assert.Equal(t, 92.0, completed[0].Grade.Score.Float64)
	assert.Equal(t, "B+", completed[1].Grade.Letter.String)
	assert.True(t, completed[2].Grade.IsZero())

	lists := course.MapCourseData(nil, completed, nil)
	require.Len(t, lists.Completed, 3)
	assert.Equal(t, "A", lists.Completed[0].Grade)
	assert.Equal(t, "B+", lists.Completed[1].Grade)
	assert.Equal(t, "", lists.Completed[2].Grade)
}

func TestDataSource_CreateContent(t *testing.T) {
	srv, reqs := newBackend(t, map[string]string{
		"POST /api/modules/1002/quizzes": `{"id": 9001, "moduleId": 1002, "title": "Quiz 2", "type": "QUIZ"}`,
	})
	ds := newDataSource(t, srv)

	payload := contenttype.PrepareContentData(contenttype.ContentPayload{ModuleID: 1002, Title: "Quiz 2", Type: contenttype.Quiz})
	item, err := ds.CreateContent(context.Background(), 1002, contenttype.PathQuizzes, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(9001), item.ID)

	require.Len(t, *reqs, 1)
	req := (*reqs)[0]
	assert.Equal(t, http.MethodPost, req.method)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(req.body), &sent))
	assert.Equal(t, "QUIZ", sent["type"])
	assert.Equal(t, 70.0, sent["passingScore"])
	assert.Equal(t, false, sent["randomizeQuestions"])
	assert.Nil(t, sent["maxScore"])
}
