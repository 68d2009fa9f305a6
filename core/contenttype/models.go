package contenttype

import "github.com/volatiletech/null/v8"

// Frontend content types, as picked in the instructor's content editor
const (
	Document   = "document"
	Video      = "video"
	Quiz       = "quiz"
	Assignment = "assignment"
	// Image is only produced when inferring a type from a MIME file type.
	Image = "image"
)

// Backend content types
const (
	BackendArticle    = "ARTICLE"
	BackendVideo      = "VIDEO"
	BackendQuiz       = "QUIZ"
	BackendAssignment = "ASSIGNMENT"
)

// API paths, relative to a module
const (
	PathContents    = "/contents"
	PathQuizzes     = "/quizzes"
	PathAssignments = "/assignments"
)

// Defaults filled in by PrepareContentData
const (
	DefaultTimeLimit          = 0
	DefaultPassingScore       = 70.0
	DefaultRandomizeQuestions = false
	DefaultMaxScore           = 100
	DefaultVideoDuration      = 0
)

var (
	FrontendTypes = []string{Document, Video, Quiz, Assignment}

	toBackend = map[string]string{
		Document:   BackendArticle,
		Video:      BackendVideo,
		Quiz:       BackendQuiz,
		Assignment: BackendAssignment,
	}
	toFrontend = map[string]string{
		BackendArticle:    Document,
		BackendVideo:      Video,
		BackendQuiz:       Quiz,
		BackendAssignment: Assignment,
	}
)

// ContentPayload is the body of a "create content" request.
// Type is a frontend type on input and a backend type once prepared.
type ContentPayload struct {
	ModuleID           int64        `json:"moduleId"`
	Title              string       `json:"title" validate:"notblank,max=255"`
	Description        null.String  `json:"description"`
	Type               string       `json:"type" validate:"required,contenttype"`
	Sequence           null.Int     `json:"sequence" validate:"omitempty,gte=0"`
	ContentURL         null.String  `json:"contentUrl" validate:"omitempty,url"`
	FileType           null.String  `json:"fileType" validate:"omitempty,mimetype"`
	FileSize           null.Int64   `json:"fileSize" validate:"omitempty,gte=0"`
	Duration           null.Int     `json:"duration" validate:"omitempty,gte=0"`
	TimeLimit          null.Int     `json:"timeLimit" validate:"omitempty,gte=0"`
	PassingScore       null.Float64 `json:"passingScore" validate:"omitempty,gte=0,lte=100"`
	RandomizeQuestions null.Bool    `json:"randomizeQuestions"`
	MaxScore           null.Int     `json:"maxScore" validate:"omitempty,gt=0"`
	DueDate            null.String  `json:"dueDate"`
}
