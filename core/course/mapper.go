package course

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/masomo-lms/portal/core"
	"github.com/masomo-lms/portal/core/content"
	"github.com/masomo-lms/portal/core/enrollment"
)

// MapStudentData returns nil for a nil user.
func MapStudentData(usr *UserDTO) *StudentProfile {
	if usr == nil {
		return nil
	}

	name := core.FirstString(usr.FullName)
	if name == "" {
		name = strings.TrimSpace(core.FirstString(usr.FirstName) + " " + core.FirstString(usr.LastName))
	}

	return &StudentProfile{
		ID:          usr.ID,
		Name:        name,
		Email:       core.StringOr(usr.Email, ""),
		StudentID:   core.StringOr(usr.StudentID, strconv.FormatInt(usr.ID, 10)),
		Major:       core.StringOr(usr.Major, DefaultMajor),
		CurrentTerm: DetermineCurrentTerm(),
		GPA:         formatGPA(usr.GPA),
		MajorGPA:    formatGPA(usr.MajorGPA),
	}
}

func formatGPA(gpa null.Float64) string {
	if !gpa.Valid {
		return fmt.Sprintf("%.2f", DefaultGPA)
	}
	return fmt.Sprintf("%.2f", gpa.Float64)
}

// MapCourseData builds the three dashboard lists. Nil inputs are treated as empty.
func MapCourseData(enrollments []enrollment.EnrollmentDTO, completed, available []CourseDTO) CourseLists {
	registered := MapRegisteredCourses(enrollments)
	done := MapCompletedCourses(completed)
	return CourseLists{
		Registered: registered,
		Completed:  done,
		Available:  MapAvailableCourses(available, registered, done),
	}
}

// MapRegisteredCourses keeps approved and in-progress enrollments.
func MapRegisteredCourses(enrollments []enrollment.EnrollmentDTO) []CourseSummary {
	courses := make([]CourseSummary, 0, len(enrollments))
	for _, e := range enrollments {
		switch enrollment.NormalizeStatus(e.Status.String) {
		case enrollment.StatusApproved, enrollment.StatusInProgress:
		default:
			continue
		}
		c := fromEnrollment(e)
		s := summarize(c)
		s.Status = StatusInProgress
		s.Term = core.StringOr(c.Term, DetermineCurrentTerm())
		s.Progress = enrollment.Progress(c.Progress.Float64)
		courses = append(courses, s)
	}
	return courses
}

// MapCompletedCourses keeps courses whose progress reached 100.
func MapCompletedCourses(courses []CourseDTO) []CourseSummary {
	res := make([]CourseSummary, 0, len(courses))
	for _, c := range courses {
		if !c.Progress.Valid || c.Progress.Float64 < 100 {
			continue
		}
		s := summarize(c)
		s.Status = StatusCompleted
		s.Term = core.StringOr(c.Term, PriorTerm)
		s.Progress = 100
		s.Grade = letterGrade(c.Grade)
		res = append(res, s)
	}
	return res
}

// MapAvailableCourses drops courses already registered or completed, matched on course code.
func MapAvailableCourses(courses []CourseDTO, registered, completed []CourseSummary) []CourseSummary {
	taken := make(map[string]struct{}, len(registered)+len(completed))
	for _, s := range registered {
		taken[s.Code] = struct{}{}
	}
	for _, s := range completed {
		taken[s.Code] = struct{}{}
	}

	res := make([]CourseSummary, 0, len(courses))
	for _, c := range courses {
		s := summarize(c)
		if _, ok := taken[s.Code]; ok {
			continue
		}
		s.Status = StatusAvailable
		s.Term = UpcomingTerm
		res = append(res, s)
	}
	return res
}

// CalculateTotalCredits sums credits, counting missing values as 0.
func CalculateTotalCredits(courses []CourseSummary) int {
	var total int
	for _, c := range courses {
		if c.Credits.Valid {
			total += c.Credits.Int
		}
	}
	return total
}

// Code returns the course code, or COURSE{id} when the backend sent none.
func Code(c CourseDTO) string {
	if code := core.FirstString(c.Code); code != "" {
		return code
	}
	return codePrefix + strconv.FormatInt(c.ID, 10)
}

// letterGrade keeps a backend letter as is and converts a numeric score.
func letterGrade(g core.Grade) string {
	if letter := core.FirstString(g.Letter); letter != "" {
		return letter
	}
	if g.Score.Valid {
		return content.ConvertToLetterGrade(g.Score.Float64)
	}
	return ""
}

func summarize(c CourseDTO) CourseSummary {
	return CourseSummary{
		ID:         c.ID,
		Code:       Code(c),
		Title:      core.FirstString(c.Title, c.Name),
		Credits:    c.Credits,
		Instructor: core.StringOr(c.InstructorName, DefaultInstructor),
		Type:       DetermineCourseType(c),
	}
}

func fromEnrollment(e enrollment.EnrollmentDTO) CourseDTO {
	return CourseDTO{
		ID:             e.CourseID.Int64,
		Code:           e.CourseCode,
		Title:          e.CourseName,
		Credits:        e.Credits,
		InstructorName: e.InstructorName,
		DepartmentName: e.DepartmentName,
		Tags:           e.Tags,
		Progress:       e.Progress,
		Term:           e.Term,
	}
}
