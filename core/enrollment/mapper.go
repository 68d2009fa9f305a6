package enrollment

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/masomo-lms/portal/core"
)

const emailDomain = "example.edu"

var monthAbbrevs = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MapEnrollmentDTO returns nil for a nil dto.
func MapEnrollmentDTO(dto *EnrollmentDTO) *Enrollment {
	if dto == nil {
		return nil
	}

	email := core.FirstString(dto.StudentEmail)
	if email == "" {
		email = ExtractEmailFromName(dto.StudentName.String)
	}

	return &Enrollment{
		ID:               dto.ID,
		StudentID:        dto.StudentID.Int64,
		StudentName:      core.StringOr(dto.StudentName, UnknownStudentName),
		StudentEmail:     email,
		StudentInitials:  GetInitials(dto.StudentName.String),
		CourseID:         dto.CourseID.Int64,
		CourseName:       core.StringOr(dto.CourseName, ""),
		CourseCode:       core.StringOr(dto.CourseCode, ""),
		Status:           GetEnrollmentStatusLabel(dto.Status.String),
		StatusClass:      GetEnrollmentStatusClass(dto.Status.String),
		Progress:         Progress(dto.Progress.Float64),
		EnrolledDate:     FormatEnrollmentDate(dto.EnrollmentDate.String),
		CompletionDate:   FormatEnrollmentDate(dto.CompletionDate.String),
		LastAccessedDate: FormatEnrollmentDate(dto.LastAccessedDate.String),
	}
}

// MapEnrollmentDTOs maps every dto, keeping order.
func MapEnrollmentDTOs(dtos []EnrollmentDTO) []Enrollment {
	res := make([]Enrollment, 0, len(dtos))
	for i := range dtos {
		res = append(res, *MapEnrollmentDTO(&dtos[i]))
	}
	return res
}

// NormalizeStatus upper-cases a backend status so lookups are case-insensitive.
func NormalizeStatus(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}

func GetEnrollmentStatusLabel(status string) string {
	if label, ok := statusLabels[NormalizeStatus(status)]; ok {
		return label
	}
	return LabelInactive
}

func GetEnrollmentStatusClass(status string) string {
	switch core.CleanString(status, true /* lower */) {
	case "approved", "in_progress", "active":
		return ClassActive
	case "completed":
		return ClassCompleted
	default:
		return ClassInactive
	}
}

// FormatEnrollmentDate renders an ISO date as "Jan 2, 2006". Blank or unparseable input gives "".
func FormatEnrollmentDate(iso string) string {
	t, ok := core.ParseDate(iso)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %d, %d", monthAbbrevs[t.Month()-1], t.Day(), t.Year())
}

// ExtractEmailFromName guesses an address when the backend only sent a display name:
// "Jane Q Doe" -> "jane.d@example.edu", "Jane" -> "jane@example.edu".
func ExtractEmailFromName(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return strings.ToLower(parts[0]) + "@" + emailDomain
	default:
		first := strings.ToLower(parts[0])
		lastInitial := strings.ToLower(string(firstRune(parts[len(parts)-1])))
		return first + "." + lastInitial + "@" + emailDomain
	}
}

// GetInitials returns the upper-cased initials of the first and last words of name.
func GetInitials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return string(unicode.ToUpper(firstRune(parts[0])))
	default:
		return string([]rune{
			unicode.ToUpper(firstRune(parts[0])),
			unicode.ToUpper(firstRune(parts[len(parts)-1])),
		})
	}
}

// Progress rounds p to a whole percentage within [0, 100].
func Progress(p float64) int {
	return core.Percent(p)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
