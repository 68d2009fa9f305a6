package restds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kat-co/vala"
	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/masomo-lms/portal/core"
	"github.com/masomo-lms/portal/core/content"
	"github.com/masomo-lms/portal/core/contenttype"
	"github.com/masomo-lms/portal/core/course"
	"github.com/masomo-lms/portal/core/enrollment"
	"github.com/masomo-lms/portal/core/portal"
)

// StatusError is returned for any non-2xx backend response other than 404.
type StatusError struct {
	Method     rest.Method
	URL        string
	StatusCode int
	Body       string
}

func (err *StatusError) Error() string {
	return fmt.Sprintf("%s %s: backend responded %d: %s", err.Method, err.URL, err.StatusCode, err.Body)
}

type dataSource struct {
	client  *rest.Client
	baseURL string
	token   string
}

var _ portal.DataSource = (*dataSource)(nil) // interface compliance check

// NewDataSource returns a DataSource talking to the backend API at conf.BaseURL.
func NewDataSource(conf core.DataSourceConfig) (portal.DataSource, error) {
	err := vala.BeginValidation().Validate(
		vala.StringNotEmpty(conf.BaseURL, "baseURL"),
	).Check()
	if err != nil {
		return nil, errors.Wrap(err, "configuring REST data source")
	}

	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &dataSource{
		client:  &rest.Client{HTTPClient: &http.Client{Timeout: timeout}},
		baseURL: conf.BaseURL,
		token:   conf.Token,
	}, nil
}

func (ds *dataSource) do(ctx context.Context, method rest.Method, path string, query map[string]string, body interface{}, dest interface{}) error {
	req := rest.Request{
		Method:      method,
		BaseURL:     ds.baseURL + path,
		Headers:     map[string]string{"Accept": "application/json"},
		QueryParams: query,
	}
	if ds.token != "" {
		req.Headers["Authorization"] = "Bearer " + ds.token
	}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		req.Body = data
		req.Headers["Content-Type"] = "application/json"
	}

	res, err := ds.send(ctx, req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	switch {
	case res.StatusCode == http.StatusNotFound:
		return portal.ErrNotFound
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return &StatusError{Method: method, URL: req.BaseURL, StatusCode: res.StatusCode, Body: res.Body}
	}

	if dest == nil || res.Body == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(res.Body), dest); err != nil {
		return errors.Wrapf(err, "decoding %s %s", method, path)
	}
	return nil
}

// send runs req under ctx so cancellation and deadlines reach the backend call.
func (ds *dataSource) send(ctx context.Context, req rest.Request) (*rest.Response, error) {
	httpReq, err := rest.BuildRequestObject(req)
	if err != nil {
		return nil, err
	}
	httpRes, err := ds.client.MakeRequest(httpReq.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return rest.BuildResponse(httpRes)
}

func (ds *dataSource) get(ctx context.Context, path string, query map[string]string, dest interface{}) error {
	return ds.do(ctx, rest.Get, path, query, nil, dest)
}

func id(n int64) string { return strconv.FormatInt(n, 10) }

func (ds *dataSource) GetUser(ctx context.Context, userID int64) (*course.UserDTO, error) {
	var usr course.UserDTO
	if err := ds.get(ctx, "/users/"+id(userID), nil, &usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (ds *dataSource) ListEnrollments(ctx context.Context, studentID int64) ([]enrollment.EnrollmentDTO, error) {
	var res []enrollment.EnrollmentDTO
	err := ds.get(ctx, "/enrollments/student/"+id(studentID), nil, &res)
	return res, err
}

func (ds *dataSource) ListCompletedCourses(ctx context.Context, studentID int64) ([]course.CourseDTO, error) {
	var res []course.CourseDTO
	err := ds.get(ctx, "/courses/completed", map[string]string{"studentId": id(studentID)}, &res)
	return res, err
}

func (ds *dataSource) ListAvailableCourses(ctx context.Context, studentID int64) ([]course.CourseDTO, error) {
	var res []course.CourseDTO
	err := ds.get(ctx, "/courses/available", map[string]string{"studentId": id(studentID)}, &res)
	return res, err
}

func (ds *dataSource) GetCourse(ctx context.Context, courseID int64) (*content.CourseDTO, error) {
	var crs content.CourseDTO
	if err := ds.get(ctx, "/courses/"+id(courseID), nil, &crs); err != nil {
		return nil, err
	}
	return &crs, nil
}

func (ds *dataSource) ListModules(ctx context.Context, courseID int64) ([]content.ModuleDTO, error) {
	var res []content.ModuleDTO
	err := ds.get(ctx, "/courses/"+id(courseID)+"/modules", nil, &res)
	return res, err
}

func (ds *dataSource) ListModuleItems(ctx context.Context, moduleID int64) ([]content.ContentItemDTO, error) {
	var res []content.ContentItemDTO
	err := ds.get(ctx, "/modules/"+id(moduleID)+"/items", nil, &res)
	return res, err
}

func (ds *dataSource) GetCourseStatistics(ctx context.Context, courseID int64) (*content.StatisticsDTO, error) {
	var stats content.StatisticsDTO
	if err := ds.get(ctx, "/courses/"+id(courseID)+"/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (ds *dataSource) ListCourseEnrollments(ctx context.Context, courseID int64) ([]enrollment.EnrollmentDTO, error) {
	var res []enrollment.EnrollmentDTO
	err := ds.get(ctx, "/enrollments/course/"+id(courseID), nil, &res)
	return res, err
}

func (ds *dataSource) CreateContent(ctx context.Context, moduleID int64, path string, payload contenttype.ContentPayload) (*content.ContentItemDTO, error) {
	var item content.ContentItemDTO
	if err := ds.do(ctx, rest.Post, "/modules/"+id(moduleID)+path, nil, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
