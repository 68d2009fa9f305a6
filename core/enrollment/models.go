package enrollment

import "github.com/volatiletech/null/v8"

// Backend enrollment statuses
const (
	StatusPending    = "PENDING"
	StatusApproved   = "APPROVED"
	StatusRejected   = "REJECTED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
	StatusExpired    = "EXPIRED"
)

// Display labels
const (
	LabelPending   = "Pending"
	LabelActive    = "Active"
	LabelRejected  = "Rejected"
	LabelCompleted = "Completed"
	LabelCancelled = "Cancelled"
	LabelExpired   = "Expired"
	LabelInactive  = "Inactive"
)

// CSS-facing status classes
const (
	ClassActive    = "active"
	ClassCompleted = "completed"
	ClassInactive  = "inactive"
)

const UnknownStudentName = "Unknown Student"

var statusLabels = map[string]string{
	StatusPending:    LabelPending,
	StatusApproved:   LabelActive,
	StatusRejected:   LabelRejected,
	StatusInProgress: LabelActive,
	StatusCompleted:  LabelCompleted,
	StatusCancelled:  LabelCancelled,
	StatusExpired:    LabelExpired,
}

// EnrollmentDTO is an enrollment as returned by the backend. Any field may be missing.
type EnrollmentDTO struct {
	ID               int64        `json:"id"`
	StudentID        null.Int64   `json:"studentId"`
	StudentName      null.String  `json:"studentName"`
	StudentEmail     null.String  `json:"studentEmail"`
	CourseID         null.Int64   `json:"courseId"`
	CourseName       null.String  `json:"courseName"`
	CourseCode       null.String  `json:"courseCode"`
	Credits          null.Int     `json:"credits"`
	InstructorName   null.String  `json:"instructorName"`
	DepartmentName   null.String  `json:"departmentName"`
	Tags             []string     `json:"tags"`
	Status           null.String  `json:"status"`
	Progress         null.Float64 `json:"progress"`
	Term             null.String  `json:"term"`
	EnrollmentDate   null.String  `json:"enrollmentDate"`
	CompletionDate   null.String  `json:"completionDate"`
	LastAccessedDate null.String  `json:"lastAccessedDate"`
}

// Enrollment is the view model rendered by enrollment tables.
type Enrollment struct {
	ID               int64  `json:"id"`
	StudentID        int64  `json:"studentId"`
	StudentName      string `json:"studentName"`
	StudentEmail     string `json:"studentEmail"`
	StudentInitials  string `json:"studentInitials"`
	CourseID         int64  `json:"courseId"`
	CourseName       string `json:"courseName"`
	CourseCode       string `json:"courseCode"`
	Status           string `json:"status"`
	StatusClass      string `json:"statusClass"`
	Progress         int    `json:"progress"`
	EnrolledDate     string `json:"enrolledDate"`
	CompletionDate   string `json:"completionDate"`
	LastAccessedDate string `json:"lastAccessedDate"`
}
