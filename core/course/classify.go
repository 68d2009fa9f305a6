package course

import (
	"strings"

	"github.com/masomo-lms/portal/core"
)

// keywords are matched in order as case-insensitive substrings of department names and tags.
var keywords = []struct {
	keyword    string
	courseType string
}{
	{"elective", TypeMajorElective},
	{"medic", TypeMedicalRequirement},
	{"anatom", TypeMedicalRequirement},
	{"pharm", TypeMedicalRequirement},
	{"nursing", TypeMedicalRequirement},
	{"relig", TypeUniversityRequirement},
	{"philos", TypeUniversityRequirement},
	{"university", TypeUniversityRequirement},
	{"general education", TypeUniversityRequirement},
	{"software", TypeMajorRequirement},
	{"major", TypeMajorRequirement},
}

// codePrefixes are matched in order against the upper-cased course code.
var codePrefixes = []struct {
	prefix     string
	courseType string
}{
	{"MED", TypeMedicalRequirement},
	{"ANAT", TypeMedicalRequirement},
	{"PHARM", TypeMedicalRequirement},
	{"SWER", TypeMajorRequirement},
	{"RELS", TypeUniversityRequirement},
	{"PHIL", TypeUniversityRequirement},
}

// DetermineCourseType classifies c by department name, then tags, then code prefix.
// Courses matching none of them are Major Electives.
func DetermineCourseType(c CourseDTO) string {
	dept := core.FirstString(c.DepartmentName)
	if dept == "" && c.Department != nil {
		dept = core.FirstString(c.Department.Name)
	}
	if t, ok := matchKeyword(dept); ok {
		return t
	}

	for _, tag := range c.Tags {
		if t, ok := matchKeyword(tag); ok {
			return t
		}
	}

	code := strings.ToUpper(core.FirstString(c.Code))
	for _, p := range codePrefixes {
		if code != "" && strings.HasPrefix(code, p.prefix) {
			return p.courseType
		}
	}
	return TypeMajorElective
}

func matchKeyword(s string) (string, bool) {
	s = core.CleanString(s, true /* lower */)
	if s == "" {
		return "", false
	}
	for _, k := range keywords {
		if strings.Contains(s, k.keyword) {
			return k.courseType, true
		}
	}
	return "", false
}
