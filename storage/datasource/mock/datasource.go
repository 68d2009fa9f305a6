package mockds

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/masomo-lms/portal/core/content"
	"github.com/masomo-lms/portal/core/contenttype"
	"github.com/masomo-lms/portal/core/course"
	"github.com/masomo-lms/portal/core/enrollment"
	"github.com/masomo-lms/portal/core/portal"
)

type dataSource struct {
	db *DB
}

var _ portal.DataSource = (*dataSource)(nil) // interface compliance check

func NewDataSource(db *DB) portal.DataSource {
	return &dataSource{db: db}
}

func (ds *dataSource) GetUser(_ context.Context, userID int64) (*course.UserDTO, error) {
	ds.db.RLock()
	defer ds.db.RUnlock()

	if usr, ok := ds.db.users[userID]; ok {
		return &usr, nil
	}
	return nil, portal.ErrNotFound
}

func (ds *dataSource) ListEnrollments(_ context.Context, studentID int64) ([]enrollment.EnrollmentDTO, error) {
	ds.db.RLock()
	defer ds.db.RUnlock()
	return ds.filterEnrollments(func(e enrollment.EnrollmentDTO) bool { return e.StudentID.Int64 == studentID }), nil
}

func (ds *dataSource) ListCompletedCourses(_ context.Context, studentID int64) ([]course.CourseDTO, error) {
	ds.db.RLock()
	defer ds.db.RUnlock()
	return append([]course.CourseDTO(nil), ds.db.completed[studentID]...), nil
}

// ListAvailableCourses returns the whole catalogue; the mapper drops courses the student already took.
func (ds *dataSource) ListAvailableCourses(_ context.Context, _ int64) ([]course.CourseDTO, error) {
	ds.db.RLock()
	defer ds.db.RUnlock()
	return append([]course.CourseDTO(nil), ds.db.catalogue...), nil
}

func (ds *dataSource) GetCourse(_ context.Context, courseID int64) (*content.CourseDTO, error) {
	ds.db.RLock()
	defer ds.db.RUnlock()

	if crs, ok := ds.db.courses[courseID]; ok {
		return &crs, nil
	}
	return nil, portal.ErrNotFound
}

// ListModules returns the course modules without their items, ordered by sequence.
// Modules without a sequence come last, in fixture order.
func (ds *dataSource) ListModules(_ context.Context, courseID int64) ([]content.ModuleDTO, error) {
	ds.db.RLock()
	defer ds.db.RUnlock()

	if _, ok := ds.db.courses[courseID]; !ok {
		return nil, portal.ErrNotFound
	}
	modules := make([]content.ModuleDTO, 0)
	for _, row := range ds.db.modules {
		if row.CourseID == courseID {
			mod := row.ModuleDTO
			mod.Items = nil
			modules = append(modules, mod)
		}
	}
	sort.SliceStable(modules, func(i, j int) bool {
		return bySequence(modules[i].Sequence, modules[j].Sequence)
	})
	return modules, nil
}

func (ds *dataSource) ListModuleItems(_ context.Context, moduleID int64) ([]content.ContentItemDTO, error) {
	ds.db.RLock()
	defer ds.db.RUnlock()

	items := make([]content.ContentItemDTO, 0)
	for _, it := range ds.db.items {
		if it.ModuleID.Int64 == moduleID {
			items = append(items, it)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return bySequence(items[i].Sequence, items[j].Sequence)
	})
	return items, nil
}

func (ds *dataSource) GetCourseStatistics(_ context.Context, courseID int64) (*content.StatisticsDTO, error) {
	ds.db.RLock()
	defer ds.db.RUnlock()

	if stats, ok := ds.db.statistics[courseID]; ok {
		return &stats, nil
	}
	return nil, portal.ErrNotFound
}

func (ds *dataSource) ListCourseEnrollments(_ context.Context, courseID int64) ([]enrollment.EnrollmentDTO, error) {
	ds.db.RLock()
	defer ds.db.RUnlock()

	if _, ok := ds.db.courses[courseID]; !ok {
		return nil, portal.ErrNotFound
	}
	return ds.filterEnrollments(func(e enrollment.EnrollmentDTO) bool { return e.CourseID.Int64 == courseID }), nil
}

// CreateContent stores the item the way the backend would: with a new id, the payload's type,
// and at the end of the module.
func (ds *dataSource) CreateContent(_ context.Context, moduleID int64, path string, payload contenttype.ContentPayload) (*content.ContentItemDTO, error) {
	switch path {
	case contenttype.PathContents, contenttype.PathQuizzes, contenttype.PathAssignments:
	default:
		return nil, errors.Errorf("unknown content path %q", path)
	}

	ds.db.Lock()
	defer ds.db.Unlock()

	var (
		found bool
		seq   int
	)
	for _, row := range ds.db.modules {
		if row.ID == moduleID {
			found = true
			break
		}
	}
	if !found {
		return nil, portal.ErrNotFound
	}
	for _, it := range ds.db.items {
		if it.ModuleID.Int64 == moduleID && it.Sequence.Int > seq {
			seq = it.Sequence.Int
		}
	}
	if payload.Sequence.Valid {
		seq = payload.Sequence.Int
	} else {
		seq++
	}

	ds.db.pkCount++
	item := content.ContentItemDTO{
		ID:          ds.db.pkCount,
		ModuleID:    null.Int64From(moduleID),
		Title:       null.StringFrom(payload.Title),
		Description: payload.Description,
		Type:        null.StringFrom(payload.Type),
		FileType:    payload.FileType,
		FileSize:    payload.FileSize,
		Duration:    payload.Duration,
		Status:      null.StringFrom("NOT_STARTED"),
		ContentURL:  payload.ContentURL,
		Sequence:    null.IntFrom(seq),
	}
	ds.db.items = append(ds.db.items, item)
	return &item, nil
}

func (ds *dataSource) filterEnrollments(keep func(enrollment.EnrollmentDTO) bool) []enrollment.EnrollmentDTO {
	res := make([]enrollment.EnrollmentDTO, 0)
	for _, e := range ds.db.enrollments {
		if keep(e) {
			res = append(res, e)
		}
	}
	return res
}

func bySequence(a, b null.Int) bool {
	switch {
	case a.Valid && b.Valid:
		return a.Int < b.Int
	default:
		return a.Valid && !b.Valid
	}
}
