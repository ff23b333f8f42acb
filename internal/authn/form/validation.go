package form

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

// LoginForm mirrors the constraints the login inputs declare in the page.
type LoginForm struct {
	Email      string `form:"email" validate:"required,email"`
	Password   string `form:"password" validate:"required"`
	RememberMe bool   `form:"remember-me"`
}

var (
	validate   *validator.Validate
	translator ut.Translator
)

const (
	requiredTag  = "required"
	requiredText = "this field is required"
)

func init() {
	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")

	validate = validator.New()

	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(errors.WithStack(err))
	}

	// Report errors with the form field names instead of the struct ones
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := validate.RegisterTranslation(
		requiredTag, translator,
		func(t ut.Translator) error { return t.Add(requiredTag, requiredText, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(requiredTag, fe.Field())
			return s
		},
	)
	if err != nil {
		panic(errors.WithStack(err))
	}
}

// Validate returns the translated error message of each invalid field,
// keyed by form field name.
func (f LoginForm) Validate() (map[string]string, error) {
	err := validate.Struct(f)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, errors.WithStack(err)
	}

	messages := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		if _, exists := messages[fe.Field()]; exists {
			continue
		}

		messages[fe.Field()] = fe.Translate(translator)
	}

	return messages, nil
}
