package content

import (
	"math"
	"strconv"
	"strings"

	"github.com/masomo-lms/portal/core"
)

// TransformCourseData builds the course viewer model. It returns nil for a nil course.
// Modules keep their order; those without a sequence are numbered by position.
func TransformCourseData(course *CourseDTO, modules []ModuleDTO, stats *StatisticsDTO) *Course {
	if course == nil {
		return nil
	}

	progress := 0
	switch {
	case stats != nil && stats.AverageCompletionPercentage.Valid:
		progress = core.Percent(stats.AverageCompletionPercentage.Float64)
	case course.Progress.Valid:
		progress = core.Percent(course.Progress.Float64)
	}

	enrollmentCount := course.EnrollmentCount
	if !enrollmentCount.Valid && stats != nil {
		enrollmentCount = stats.EnrollmentCount
	}

	mods := make([]Module, 0, len(modules))
	for i := range modules {
		m := TransformModuleData(&modules[i], modules[i].Items)
		if !modules[i].Sequence.Valid {
			m.Number = i + 1
		}
		mods = append(mods, *m)
	}

	dept := core.FirstString(course.DepartmentName)
	if dept == "" && course.Department != nil {
		dept = core.FirstString(course.Department.Name)
	}

	return &Course{
		ID:          course.ID,
		Title:       core.FirstString(course.Title, course.Name),
		Code:        Code(*course),
		Description: core.StringOr(course.Description, ""),
		Instructor: Instructor{
			Name:   core.StringOr(course.InstructorName, DefaultInstructorName),
			Avatar: core.StringOr(course.InstructorAvatar, DefaultInstructorAvatar),
			Title:  core.StringOr(course.InstructorTitle, DefaultInstructorTitle),
		},
		Progress:        progress,
		Status:          CourseStatus(progress),
		Modules:         mods,
		Department:      dept,
		EnrollmentCount: enrollmentCount,
		StartDate:       course.StartDate.String,
		EndDate:         course.EndDate.String,
		Semester:        DetermineSemester(course),
	}
}

// TransformModuleData returns nil for a nil module.
// Number is the backend sequence, 0 when absent.
func TransformModuleData(module *ModuleDTO, items []ContentItemDTO) *Module {
	if module == nil {
		return nil
	}

	res := make([]ContentItem, 0, len(items))
	for i := range items {
		res = append(res, *TransformContentItem(&items[i]))
	}

	return &Module{
		ID:          module.ID,
		Title:       core.StringOr(module.Title, ""),
		Description: core.StringOr(module.Description, ""),
		Number:      module.Sequence.Int,
		Status:      CalculateModuleStatus(res),
		Items:       res,
	}
}

// TransformContentItem returns nil for a nil item.
func TransformContentItem(item *ContentItemDTO) *ContentItem {
	if item == nil {
		return nil
	}

	minutes := item.Duration.Int
	if !item.Duration.Valid || minutes <= 0 {
		minutes = EstimateDuration(*item)
	}

	return &ContentItem{
		ID:          item.ID,
		Title:       core.StringOr(item.Title, ""),
		Description: core.StringOr(item.Description, ""),
		Type:        ItemType(*item),
		Status:      ItemStatus(*item),
		ContentURL:  core.FirstString(item.ContentURL, item.FileURL, item.URL),
		Duration:    FormatDuration(minutes),
	}
}

// CourseStatus derives a status from a 0-100 progress value.
func CourseStatus(progress int) string {
	switch {
	case progress >= 100:
		return StatusCompleted
	case progress > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// CalculateModuleStatus: completed when every item is, in-progress when any item was started.
func CalculateModuleStatus(items []ContentItem) string {
	if len(items) == 0 {
		return StatusNotStarted
	}
	var completed, started int
	for _, it := range items {
		switch it.Status {
		case StatusCompleted:
			completed++
		case StatusInProgress:
			started++
		}
	}
	switch {
	case completed == len(items):
		return StatusCompleted
	case completed > 0 || started > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// ItemStatus normalizes the raw status, falling back on the completed flag.
func ItemStatus(item ContentItemDTO) string {
	raw := strings.ReplaceAll(core.CleanString(item.Status.String, true /* lower */), "_", "-")
	switch raw {
	case "completed", "complete", "done":
		return StatusCompleted
	case "in-progress", "started":
		return StatusInProgress
	}
	if item.Completed.Valid && item.Completed.Bool {
		return StatusCompleted
	}
	return StatusNotStarted
}

// ItemType resolves the item type from the first present of type, contentType and fileType.
func ItemType(item ContentItemDTO) string {
	return MapContentTypeToItemType(core.FirstString(item.Type, item.ContentType, item.FileType))
}

func MapContentTypeToItemType(raw string) string {
	s := core.CleanString(raw, true /* lower */)
	switch {
	case strings.Contains(s, "video"), strings.Contains(s, "mp4"):
		return TypeVideo
	case strings.Contains(s, "quiz"):
		return TypeQuiz
	case strings.Contains(s, "interactive"):
		return TypeInteractive
	default:
		return TypeDocument
	}
}

const (
	bytesPerMinute         = 50 * 1024
	minDocumentMinutes     = 5
	defaultDocumentMinutes = 10
)

// EstimateDuration returns an estimated reading or viewing time in minutes.
func EstimateDuration(item ContentItemDTO) int {
	switch ItemType(item) {
	case TypeVideo:
		return 15
	case TypeQuiz:
		return 10
	case TypeInteractive:
		return 20
	}
	if !item.FileSize.Valid || item.FileSize.Int64 <= 0 {
		return defaultDocumentMinutes
	}
	minutes := int(math.Round(float64(item.FileSize.Int64) / bytesPerMinute))
	if minutes < minDocumentMinutes {
		return minDocumentMinutes
	}
	return minutes
}

func FormatDuration(minutes int) string {
	if minutes <= 0 {
		minutes = defaultDocumentMinutes
	}
	return strconv.Itoa(minutes) + " min"
}

// DetermineSemester returns "Fall 2025" style labels from the start date.
func DetermineSemester(course *CourseDTO) string {
	if course == nil {
		return CurrentSemester
	}
	t, ok := core.ParseDate(course.StartDate.String)
	if !ok {
		return CurrentSemester
	}
	return core.Season(t.Month()) + " " + strconv.Itoa(t.Year())
}

func ConvertToLetterGrade(grade float64) string {
	switch {
	case grade >= 90:
		return "A"
	case grade >= 80:
		return "B"
	case grade >= 70:
		return "C"
	case grade >= 60:
		return "D"
	default:
		return "F"
	}
}

// Code returns the course code, or CODE{id} when the backend sent none.
func Code(c CourseDTO) string {
	if code := core.FirstString(c.Code); code != "" {
		return code
	}
	return codePrefix + strconv.FormatInt(c.ID, 10)
}
