package course

import (
	"github.com/volatiletech/null/v8"

	"github.com/masomo-lms/portal/core"
)

// Course statuses used by the dashboard lists
const (
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusAvailable  = "available"
)

// Course types
const (
	TypeMedicalRequirement    = "Medical Requirement"
	TypeMajorRequirement      = "Major Requirement"
	TypeUniversityRequirement = "University Requirement"
	TypeMajorElective         = "Major Elective"
)

const (
	// PriorTerm labels completed courses that do not carry their own term.
	PriorTerm = "Fall-2024"
	// UpcomingTerm labels every course open for registration.
	UpcomingTerm = "Fall-2025"

	DefaultGPA        = 3.5
	DefaultMajor      = "Undeclared"
	DefaultInstructor = "TBA"

	// codePrefix differs from content.codePrefix ("CODE"); both are kept as the backend screens expect.
	codePrefix = "COURSE"
)

// UserDTO is the authenticated user's record as returned by the backend.
type UserDTO struct {
	ID        int64        `json:"id"`
	FullName  null.String  `json:"fullName"`
	FirstName null.String  `json:"firstName"`
	LastName  null.String  `json:"lastName"`
	Email     null.String  `json:"email"`
	StudentID null.String  `json:"studentId"`
	Major     null.String  `json:"major"`
	GPA       null.Float64 `json:"gpa"`
	MajorGPA  null.Float64 `json:"majorGpa"`
}

type DepartmentDTO struct {
	ID   null.Int64  `json:"id"`
	Name null.String `json:"name"`
}

// CourseDTO is a catalogue course as returned by the backend's course list endpoints.
type CourseDTO struct {
	ID             int64          `json:"id"`
	Code           null.String    `json:"code"`
	Title          null.String    `json:"title"`
	Name           null.String    `json:"name"`
	Credits        null.Int       `json:"credits"`
	InstructorName null.String    `json:"instructorName"`
	Department     *DepartmentDTO `json:"department"`
	DepartmentName null.String    `json:"departmentName"`
	Tags           []string       `json:"tags"`
	Progress       null.Float64   `json:"progress"`
	Term           null.String    `json:"term"`
	Grade          core.Grade     `json:"grade"`
}

// StudentProfile is rendered by the dashboard header.
type StudentProfile struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	StudentID   string `json:"studentId"`
	Major       string `json:"major"`
	CurrentTerm string `json:"currentTerm"`
	GPA         string `json:"gpa"`
	MajorGPA    string `json:"majorGpa"`
}

// CourseSummary is a row of the registered / completed / available course lists.
type CourseSummary struct {
	ID         int64    `json:"id"`
	Code       string   `json:"code"`
	Title      string   `json:"title"`
	Credits    null.Int `json:"credits"`
	Instructor string   `json:"instructor"`
	Type       string   `json:"type"`
	Status     string   `json:"status"`
	Term       string   `json:"term"`
	Progress   int      `json:"progress"`
	Grade      string   `json:"grade,omitempty"`
}

type CourseLists struct {
	Registered []CourseSummary `json:"registered"`
	Completed  []CourseSummary `json:"completed"`
	Available  []CourseSummary `json:"available"`
}
