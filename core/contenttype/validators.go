package contenttype

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/masomo-lms/portal/core"
)

var (
	contentTypeTag  = "contenttype"
	contentTypeText = "must be one of " + strings.Join(FrontendTypes, ", ")

	mimeTypeTag  = "mimetype"
	mimeTypeText = "unsupported file type"
)

func init() {
	_ = core.Validate.RegisterValidation(contentTypeTag, contentTypeValidation)
	core.RegisterCustomTranslation(contentTypeTag, contentTypeText)

	_ = core.Validate.RegisterValidation(mimeTypeTag, mimeTypeValidation)
	core.RegisterCustomTranslation(mimeTypeTag, mimeTypeText)
}

// Validate checks a payload before it is prepared.
func (p ContentPayload) Validate() error { return core.Validate.Struct(p) }

// Custom Validators

func contentTypeValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		_, known := toBackend[core.CleanString(str, true /* lower */)]
		return known
	}
	return false
}

func mimeTypeValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return IsSupportedFileType(str)
	}
	return false
}
