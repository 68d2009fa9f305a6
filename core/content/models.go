package content

import "github.com/volatiletech/null/v8"

// Progress statuses shared by courses, modules and items
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Item types
const (
	TypeDocument    = "document"
	TypeVideo       = "video"
	TypeQuiz        = "quiz"
	TypeInteractive = "interactive"
)

const (
	DefaultInstructorName   = "TBA"
	DefaultInstructorAvatar = "/assets/images/default-avatar.png"
	DefaultInstructorTitle  = "Instructor"
	CurrentSemester         = "Current Semester"

	// codePrefix differs from course.codePrefix ("COURSE"); both are kept as the backend screens expect.
	codePrefix = "CODE"
)

type DepartmentDTO struct {
	ID   null.Int64  `json:"id"`
	Name null.String `json:"name"`
}

// CourseDTO is a course as returned by the backend's course detail endpoint.
type CourseDTO struct {
	ID               int64          `json:"id"`
	Title            null.String    `json:"title"`
	Name             null.String    `json:"name"`
	Code             null.String    `json:"code"`
	Description      null.String    `json:"description"`
	InstructorName   null.String    `json:"instructorName"`
	InstructorAvatar null.String    `json:"instructorAvatar"`
	InstructorTitle  null.String    `json:"instructorTitle"`
	Progress         null.Float64   `json:"progress"`
	Department       *DepartmentDTO `json:"department"`
	DepartmentName   null.String    `json:"departmentName"`
	EnrollmentCount  null.Int       `json:"enrollmentCount"`
	StartDate        null.String    `json:"startDate"`
	EndDate          null.String    `json:"endDate"`
}

type ModuleDTO struct {
	ID          int64            `json:"id"`
	Title       null.String      `json:"title"`
	Description null.String      `json:"description"`
	Sequence    null.Int         `json:"sequence"`
	Items       []ContentItemDTO `json:"items,omitempty"`
}

// ContentItemDTO is a module item. Backends disagree on where the type and url live,
// so every known spelling is accepted.
type ContentItemDTO struct {
	ID          int64       `json:"id"`
	ModuleID    null.Int64  `json:"moduleId"`
	Title       null.String `json:"title"`
	Description null.String `json:"description"`
	Type        null.String `json:"type"`
	ContentType null.String `json:"contentType"`
	FileType    null.String `json:"fileType"`
	FileSize    null.Int64  `json:"fileSize"`
	Duration    null.Int    `json:"duration"`
	Status      null.String `json:"status"`
	Completed   null.Bool   `json:"completed"`
	ContentURL  null.String `json:"contentUrl"`
	FileURL     null.String `json:"fileUrl"`
	URL         null.String `json:"url"`
	Sequence    null.Int    `json:"sequence"`
}

type StatisticsDTO struct {
	AverageCompletionPercentage null.Float64 `json:"averageCompletionPercentage"`
	EnrollmentCount             null.Int     `json:"enrollmentCount"`
	CompletionCount             null.Int     `json:"completionCount"`
}

type Instructor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Title  string `json:"title"`
}

// Course is the course viewer model.
type Course struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Code            string     `json:"code"`
	Description     string     `json:"description"`
	Instructor      Instructor `json:"instructor"`
	Progress        int        `json:"progress"`
	Status          string     `json:"status"`
	Modules         []Module   `json:"modules"`
	Department      string     `json:"department"`
	EnrollmentCount null.Int   `json:"enrollmentCount"`
	StartDate       string     `json:"startDate"`
	EndDate         string     `json:"endDate"`
	Semester        string     `json:"semester"`
}

type Module struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Number      int           `json:"number"`
	Status      string        `json:"status"`
	Items       []ContentItem `json:"items"`
}

type ContentItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	ContentURL  string `json:"contentUrl"`
	Duration    string `json:"duration"`
}
