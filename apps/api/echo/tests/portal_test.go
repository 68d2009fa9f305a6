package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masomo-lms/portal/core"
	"github.com/masomo-lms/portal/core/content"
	"github.com/masomo-lms/portal/core/course"
	"github.com/masomo-lms/portal/core/enrollment"
	"github.com/masomo-lms/portal/core/portal"
)

func freezeTime(t *testing.T) {
	core.NowFunc = func() time.Time { return time.Date(2025, time.October, 5, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { core.NowFunc = time.Now })
}

func Test_portalApi_auth(t *testing.T) {
	stranger := getToken(t, core.Session{UserID: 404, Role: core.RoleStudent})
	studentToken := getToken(t, student)

	tests := []httpTest{
		{name: "missing token", method: http.MethodGet, path: "/v1/me", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)},
		{name: "bad token", method: http.MethodGet, path: "/v1/me", token: "not.a.jwt", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, httpErr{Error: "invalid or expired jwt"})},
		{name: "unknown user", method: http.MethodGet, path: "/v1/me", token: stranger, wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)},
		{name: "student cannot list enrollments", method: http.MethodGet, path: "/v1/courses/101/enrollments", token: studentToken, wantCode: http.StatusForbidden, wantData: marshallObj(t, errForbidden)},
		{name: "student cannot create content", method: http.MethodPost, path: "/v1/modules/1001/contents", token: studentToken, body: []byte(`{"title":"x","type":"document"}`), wantCode: http.StatusForbidden, wantData: marshallObj(t, errForbidden)},
		{name: "bad id", method: http.MethodGet, path: "/v1/courses/abc", token: studentToken, wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)},
		{name: "missing course", method: http.MethodGet, path: "/v1/courses/999", token: studentToken, wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_portalApi_currentTerm(t *testing.T) {
	freezeTime(t)

	tt := httpTest{
		method:   http.MethodGet,
		path:     "/v1/terms/current/",
		wantCode: http.StatusOK,
		wantData: []byte(`{"term":"Fall-2025","season":"Fall","year":2025}`),
	}
	req, rec := newRequest(tt.method, tt.path)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}

func Test_portalApi_profile(t *testing.T) {
	req, rec := newAuthRequest(http.MethodGet, "/v1/me", getToken(t, student))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	var profile course.StudentProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Grace Mbuyi", profile.Name)
	assert.Equal(t, "3.72", profile.GPA)
}

func Test_portalApi_courses(t *testing.T) {
	token := getToken(t, student)
	freezeTime(t)

	codes := func(courses []course.CourseSummary) []string {
		out := make([]string, 0, len(courses))
		for _, c := range courses {
			out = append(out, c.Code)
		}
		return out
	}

	t.Run("default order", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/me/courses", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var dash portal.Dashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
		assert.Equal(t, []string{"SWER301", "ANAT101"}, codes(dash.Registered))
		assert.Equal(t, 7, dash.TotalCredits)
		assert.Equal(t, "Fall-2025", dash.CurrentTerm)
	})

	t.Run("ordering", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/me/courses?ordering=-credits,code", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var dash portal.Dashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
		assert.Equal(t, []string{"PHARM220", "PHIL205", "COURSE106", "RELS110"}, codes(dash.Available))
	})

	t.Run("unknown ordering field", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/me/courses?ordering=-gpa", token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "cannot order by gpa")
	})
}

func Test_portalApi_course(t *testing.T) {
	req, rec := newAuthRequest(http.MethodGet, "/v1/courses/101", getToken(t, student))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var crs content.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crs))
	assert.Equal(t, "SWER301", crs.Code)
	assert.Equal(t, 63, crs.Progress)
	require.Len(t, crs.Modules, 3)
	assert.Equal(t, "8 min", crs.Modules[0].Items[0].Duration)
}

func Test_portalApi_enrollments(t *testing.T) {
	req, rec := newAuthRequest(http.MethodGet, "/v1/courses/101/enrollments", getToken(t, instructor))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var enrs []enrollment.Enrollment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &enrs))
	require.Len(t, enrs, 2)
	assert.Equal(t, "GM", enrs[0].StudentInitials)
}

func Test_portalApi_createContent(t *testing.T) {
	token := getToken(t, instructor)

	t.Run("created", func(t *testing.T) {
		body := []byte(`{"title":"Reading list","type":"document","fileType":"application/pdf","fileSize":512000}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/modules/1003/contents", token, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var item content.ContentItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
		assert.Equal(t, "Reading list", item.Title)
		assert.Equal(t, content.TypeDocument, item.Type)
		assert.Equal(t, content.StatusNotStarted, item.Status)
		assert.Equal(t, "10 min", item.Duration)
	})

	t.Run("invalid payload", func(t *testing.T) {
		body := []byte(`{"title":"  ","type":"podcast","passingScore":120}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/modules/1003/contents", token, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
		assert.Contains(t, fields, "title")
		assert.Contains(t, fields, "type")
		assert.Contains(t, fields, "passingScore")
	})

	t.Run("malformed json", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/modules/1003/contents", token, []byte(`{"title":`))
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown module", func(t *testing.T) {
		body := []byte(`{"title":"x","type":"document"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/modules/42/contents", token, body)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
