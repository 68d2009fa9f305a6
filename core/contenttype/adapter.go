package contenttype

import (
	"mime"
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/masomo-lms/portal/core"
	"github.com/masomo-lms/portal/core/content"
)

// MapToBackendType translates a frontend type. Unknown types become ARTICLE.
func MapToBackendType(frontendType string) string {
	if t, ok := toBackend[core.CleanString(frontendType, true /* lower */)]; ok {
		return t
	}
	return BackendArticle
}

// MapToFrontendType translates a backend type. Unknown types become document.
func MapToFrontendType(backendType string) string {
	if t, ok := toFrontend[strings.ToUpper(strings.TrimSpace(backendType))]; ok {
		return t
	}
	return Document
}

// IsSpecialContentType reports whether t is created through its own sub-resource rather than /contents.
func IsSpecialContentType(t string) bool {
	switch core.CleanString(t, true /* lower */) {
	case Quiz, Assignment:
		return true
	default:
		return false
	}
}

func GetAPIPathForType(t string) string {
	switch core.CleanString(t, true /* lower */) {
	case Quiz:
		return PathQuizzes
	case Assignment:
		return PathAssignments
	default:
		return PathContents
	}
}

// PrepareContentData returns a copy of p ready to be sent to the backend:
// the type is translated and type-specific fields the caller left out are defaulted.
func PrepareContentData(p ContentPayload) ContentPayload {
	frontendType := MapToFrontendType(MapToBackendType(p.Type))
	p.Type = toBackend[frontendType]

	switch frontendType {
	case Quiz:
		if !p.TimeLimit.Valid {
			p.TimeLimit = null.IntFrom(DefaultTimeLimit)
		}
		if !p.PassingScore.Valid {
			p.PassingScore = null.Float64From(DefaultPassingScore)
		}
		if !p.RandomizeQuestions.Valid {
			p.RandomizeQuestions = null.BoolFrom(DefaultRandomizeQuestions)
		}
	case Assignment:
		if !p.MaxScore.Valid {
			p.MaxScore = null.IntFrom(DefaultMaxScore)
		}
	case Video:
		if !p.Duration.Valid {
			p.Duration = null.IntFrom(DefaultVideoDuration)
		}
	}
	return p
}

// EnhanceContentResponse puts a backend content item into the frontend vocabulary.
// A known backend type is translated, an unknown one is kept as sent, and a missing one
// is inferred from the MIME file type.
func EnhanceContentResponse(item content.ContentItemDTO) content.ContentItemDTO {
	raw := core.FirstString(item.Type, item.ContentType)
	if raw == "" {
		item.Type = null.StringFrom(InferTypeFromFileType(item.FileType.String))
		return item
	}
	if t, ok := toFrontend[strings.ToUpper(raw)]; ok {
		item.Type = null.StringFrom(t)
	}
	return item
}

// InferTypeFromFileType maps video/* to video, image/* to image and anything else to document.
func InferTypeFromFileType(fileType string) string {
	ft := core.CleanString(fileType, true /* lower */)
	switch {
	case strings.HasPrefix(ft, "video/"):
		return Video
	case strings.HasPrefix(ft, "image/"):
		return Image
	default:
		return Document
	}
}

var supportedFileTypes = newSet(
	// documents
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.oasis.opendocument.text",
	"application/rtf",
	"text/plain",
	"text/markdown",
	"text/html",
	// presentations
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/vnd.oasis.opendocument.presentation",
	// spreadsheets
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.oasis.opendocument.spreadsheet",
	"text/csv",
	// images
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/svg+xml",
	// video
	"video/mp4",
	"video/webm",
	"video/ogg",
	"video/quicktime",
	// audio
	"audio/mpeg",
	"audio/wav",
	"audio/ogg",
	"audio/mp4",
	"audio/webm",
)

// IsSupportedFileType reports whether an upload of the given MIME type is accepted.
// Parameters such as charset are ignored.
func IsSupportedFileType(mimeType string) bool {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return false
	}
	_, ok := supportedFileTypes[mediaType]
	return ok
}

func newSet(vals ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}
