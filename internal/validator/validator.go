package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// slugRegex matches valid team slugs: lowercase alphanumeric runs separated
// by single hyphens, no leading/trailing/consecutive hyphens. The public
// profile route embeds the slug directly, so anything else is rejected at
// binding time. Length limits live on the request binding tags.
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validateSlug backs the `slug` binding tag on team requests.
func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", validateSlug)
	}
}
