package mockds

import (
	"encoding/json"
	"io/fs"
	"path"
	"sync"

	"github.com/pkg/errors"

	"github.com/masomo-lms/portal/core/content"
	"github.com/masomo-lms/portal/core/course"
	"github.com/masomo-lms/portal/core/enrollment"
	appfs "github.com/masomo-lms/portal/fs"
)

type (
	// DB is an in-memory copy of the backend, seeded from JSON fixtures.
	DB struct {
		sync.RWMutex
		users       map[int64]course.UserDTO
		enrollments []enrollment.EnrollmentDTO
		completed   map[int64][]course.CourseDTO
		catalogue   []course.CourseDTO
		courses     map[int64]content.CourseDTO
		statistics  map[int64]content.StatisticsDTO
		modules     []moduleRow
		items       []content.ContentItemDTO
		pkCount     int64
	}

	moduleRow struct {
		CourseID int64 `json:"courseId"`
		content.ModuleDTO
	}

	completedRow struct {
		StudentID int64              `json:"studentId"`
		Courses   []course.CourseDTO `json:"courses"`
	}

	statisticsRow struct {
		CourseID int64 `json:"courseId"`
		content.StatisticsDTO
	}
)

// OpenFixtures opens a DB seeded from the fixtures embedded in the binary.
func OpenFixtures() (*DB, error) {
	return Open(appfs.Fixtures, "fixtures")
}

// Open loads every table from the *.json files under dir in fsys.
func Open(fsys fs.FS, dir string) (*DB, error) {
	var (
		users      []course.UserDTO
		completed  []completedRow
		courses    []content.CourseDTO
		statistics []statisticsRow
	)
	db := &DB{}

	tables := []struct {
		file string
		dest interface{}
	}{
		{"users.json", &users},
		{"enrollments.json", &db.enrollments},
		{"completed.json", &completed},
		{"catalogue.json", &db.catalogue},
		{"courses.json", &courses},
		{"statistics.json", &statistics},
		{"modules.json", &db.modules},
		{"items.json", &db.items},
	}
	for _, tbl := range tables {
		data, err := fs.ReadFile(fsys, path.Join(dir, tbl.file))
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", tbl.file)
		}
		if err := json.Unmarshal(data, tbl.dest); err != nil {
			return nil, errors.Wrapf(err, "decoding %s", tbl.file)
		}
	}

	db.users = make(map[int64]course.UserDTO, len(users))
	for _, u := range users {
		db.users[u.ID] = u
	}
	db.completed = make(map[int64][]course.CourseDTO, len(completed))
	for _, row := range completed {
		db.completed[row.StudentID] = append(db.completed[row.StudentID], row.Courses...)
	}
	db.courses = make(map[int64]content.CourseDTO, len(courses))
	for _, c := range courses {
		db.courses[c.ID] = c
	}
	db.statistics = make(map[int64]content.StatisticsDTO, len(statistics))
	for _, row := range statistics {
		db.statistics[row.CourseID] = row.StatisticsDTO
	}
	for _, it := range db.items {
		if it.ID > db.pkCount {
			db.pkCount = it.ID
		}
	}
	return db, nil
}
