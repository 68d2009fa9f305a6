package portal

import (
	"context"

	"github.com/pkg/errors"

	"github.com/masomo-lms/portal/core"
	"github.com/masomo-lms/portal/core/content"
	"github.com/masomo-lms/portal/core/contenttype"
	"github.com/masomo-lms/portal/core/course"
	"github.com/masomo-lms/portal/core/enrollment"
)

var (
	// errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("you are not allowed to perform this action")
)

type (
	// DataSource is the backend the portal reads from: the mock fixtures or the REST API.
	// Lookups of a single record return ErrNotFound when it does not exist.
	DataSource interface {
		GetUser(ctx context.Context, userID int64) (*course.UserDTO, error)
		ListEnrollments(ctx context.Context, studentID int64) ([]enrollment.EnrollmentDTO, error)
		ListCompletedCourses(ctx context.Context, studentID int64) ([]course.CourseDTO, error)
		ListAvailableCourses(ctx context.Context, studentID int64) ([]course.CourseDTO, error)

		GetCourse(ctx context.Context, courseID int64) (*content.CourseDTO, error)
		ListModules(ctx context.Context, courseID int64) ([]content.ModuleDTO, error)
		ListModuleItems(ctx context.Context, moduleID int64) ([]content.ContentItemDTO, error)
		GetCourseStatistics(ctx context.Context, courseID int64) (*content.StatisticsDTO, error)
		ListCourseEnrollments(ctx context.Context, courseID int64) ([]enrollment.EnrollmentDTO, error)

		// CreateContent posts a prepared payload to the module sub-resource at path
		// (see contenttype.GetAPIPathForType) and returns the created item.
		CreateContent(ctx context.Context, moduleID int64, path string, payload contenttype.ContentPayload) (*content.ContentItemDTO, error)
	}

	Service struct {
		ds  DataSource
		log core.Logger
	}

	// Dashboard is the student's course overview.
	Dashboard struct {
		course.CourseLists
		TotalCredits int    `json:"totalCredits"`
		CurrentTerm  string `json:"currentTerm"`
	}
)

func NewService(ds DataSource, logger core.Logger) *Service {
	return &Service{ds: ds, log: logger}
}

// fail wraps a data source error and logs it, unless it is a plain miss.
func (svc *Service) fail(err error, msg string, args ...interface{}) error {
	err = errors.Wrap(err, msg)
	if errors.Cause(err) != ErrNotFound {
		svc.log.Error(msg, append([]interface{}{err}, args...)...)
	}
	return err
}

func (svc *Service) StudentProfile(ctx context.Context, sess core.Session) (*course.StudentProfile, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	usr, err := svc.ds.GetUser(ctx, sess.UserID)
	if err != nil {
		return nil, svc.fail(err, "fetching user", sess)
	}
	return course.MapStudentData(usr), nil
}

// StudentCourses builds the dashboard lists, each sorted by orderings when given.
func (svc *Service) StudentCourses(ctx context.Context, sess core.Session, orderings ...core.Ordering) (Dashboard, error) {
	if err := sess.Validate(); err != nil {
		return Dashboard{}, err
	}

	enrollments, err := svc.ds.ListEnrollments(ctx, sess.UserID)
	if err != nil {
		return Dashboard{}, svc.fail(err, "listing enrollments", sess)
	}
	completed, err := svc.ds.ListCompletedCourses(ctx, sess.UserID)
	if err != nil {
		return Dashboard{}, svc.fail(err, "listing completed courses", sess)
	}
	available, err := svc.ds.ListAvailableCourses(ctx, sess.UserID)
	if err != nil {
		return Dashboard{}, svc.fail(err, "listing available courses", sess)
	}

	lists := course.MapCourseData(enrollments, completed, available)
	course.SortSummaries(lists.Registered, orderings)
	course.SortSummaries(lists.Completed, orderings)
	course.SortSummaries(lists.Available, orderings)

	return Dashboard{
		CourseLists:  lists,
		TotalCredits: course.CalculateTotalCredits(lists.Registered),
		CurrentTerm:  course.DetermineCurrentTerm(),
	}, nil
}

// CourseDetail assembles the course viewer model. Modules that were listed without
// their items get them fetched one module at a time. Missing statistics are not an error.
func (svc *Service) CourseDetail(ctx context.Context, courseID int64) (*content.Course, error) {
	crs, err := svc.ds.GetCourse(ctx, courseID)
	if err != nil {
		return nil, svc.fail(err, "fetching course", courseID)
	}

	modules, err := svc.ds.ListModules(ctx, courseID)
	if err != nil {
		return nil, svc.fail(err, "listing modules", courseID)
	}
	for i := range modules {
		mod := &modules[i]
		if mod.Items == nil {
			if mod.Items, err = svc.ds.ListModuleItems(ctx, mod.ID); err != nil {
				return nil, svc.fail(err, "listing module items", mod.ID)
			}
		}
		for j := range mod.Items {
			mod.Items[j] = contenttype.EnhanceContentResponse(mod.Items[j])
		}
	}

	stats, err := svc.ds.GetCourseStatistics(ctx, courseID)
	if err != nil {
		if errors.Cause(err) != ErrNotFound {
			svc.log.Warn("fetching course statistics", err, courseID)
		}
		stats = nil
	}

	return content.TransformCourseData(crs, modules, stats), nil
}

func (svc *Service) CourseEnrollments(ctx context.Context, courseID int64) ([]enrollment.Enrollment, error) {
	dtos, err := svc.ds.ListCourseEnrollments(ctx, courseID)
	if err != nil {
		return nil, svc.fail(err, "listing course enrollments", courseID)
	}
	return enrollment.MapEnrollmentDTOs(dtos), nil
}

// CreateContent adds an item to a module. Only instructors and admins may create content.
// Invalid payloads are reported as validator.ValidationErrors.
func (svc *Service) CreateContent(ctx context.Context, sess core.Session, moduleID int64, payload contenttype.ContentPayload) (*content.ContentItem, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if !sess.IsInstructor() {
		return nil, ErrForbidden
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	prepared := contenttype.PrepareContentData(payload)
	prepared.ModuleID = moduleID

	item, err := svc.ds.CreateContent(ctx, moduleID, contenttype.GetAPIPathForType(payload.Type), prepared)
	if err != nil {
		return nil, svc.fail(err, "creating content", sess)
	}
	enhanced := contenttype.EnhanceContentResponse(*item)
	return content.TransformContentItem(&enhanced), nil
}
