package course

import (
	"sort"
	"strings"

	"github.com/masomo-lms/portal/core"
)

// SortableFields lists the CourseSummary fields accepted in an ordering.
var SortableFields = []string{"code", "title", "credits", "instructor", "type", "term", "progress"}

// SortSummaries sorts courses in place by the given orderings, first key first.
// Unknown fields are ignored; the sort is stable so the backend order breaks ties.
func SortSummaries(courses []CourseSummary, orderings []core.Ordering) {
	if len(orderings) == 0 {
		return
	}
	sort.SliceStable(courses, func(i, j int) bool {
		for _, ord := range orderings {
			c := compareField(courses[i], courses[j], ord.Field)
			if c == 0 {
				continue
			}
			if ord.Ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
}

func compareField(a, b CourseSummary, field string) int {
	switch field {
	case "code":
		return strings.Compare(a.Code, b.Code)
	case "title":
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case "credits":
		return compareInt(a.Credits.Int, b.Credits.Int)
	case "instructor":
		return strings.Compare(a.Instructor, b.Instructor)
	case "type":
		return strings.Compare(a.Type, b.Type)
	case "term":
		return strings.Compare(a.Term, b.Term)
	case "progress":
		return compareInt(a.Progress, b.Progress)
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
