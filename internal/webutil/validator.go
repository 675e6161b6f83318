// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_br_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

// Validator is the application-wide validator instance.
var Validator *validator.Validate

// Trans translates validation error messages to Portuguese.
var Trans ut.Translator

func init() {
	Validator = validator.New()

	// Report JSON tag names instead of struct field names.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	portuguese := pt_BR.New()
	uni := ut.New(portuguese, portuguese)
	var found bool
	Trans, found = uni.GetTranslator("pt_BR")
	if !found {
		log.Fatal("pt_BR translator not found")
	}

	if err := pt_br_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}
}
