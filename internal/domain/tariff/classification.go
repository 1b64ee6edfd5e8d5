package tariff

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Code lengths of the classification hierarchy. A statistical code embeds
// its ancestry: the first 7 characters form the subheading code, the first
// 4 the heading, the first 2 the chapter.
const (
	SectionCodeLen    = 2
	ChapterCodeLen    = 2
	HeadingCodeLen    = 4
	SubheadingCodeLen = 7
	LineCodeLen       = 9
)

// Section is the top level of the customs classification (部).
type Section struct {
	Code  string `validate:"required,len=2"`
	Title string `validate:"required,max=255"`
	Notes string `validate:"max=65535"`
}

// Chapter belongs to a section (類).
type Chapter struct {
	Code        string `validate:"required,len=2,numeric"`
	SectionCode string `validate:"required,len=2"`
	Title       string `validate:"required,max=255"`
	Notes       string `validate:"max=65535"`
}

// Heading belongs to a chapter (項).
type Heading struct {
	Code        string `validate:"required,len=4,numeric"`
	ChapterCode string `validate:"required,len=2,numeric"`
	Title       string `validate:"required,max=1023"`
}

// Subheading belongs to a heading (号).
type Subheading struct {
	Code        string `validate:"required,len=7"`
	HeadingCode string `validate:"required,len=4,numeric"`
	Title       string `validate:"max=1023"`
}

// Validate checks the Section fields against the domain rules
func (s *Section) Validate() error {
	return validateStruct(s)
}

// Validate checks the Chapter fields against the domain rules
func (c *Chapter) Validate() error {
	return validateStruct(c)
}

// Validate checks the Heading fields against the domain rules
func (h *Heading) Validate() error {
	return validateStruct(h)
}

// Validate checks the Subheading fields against the domain rules
func (s *Subheading) Validate() error {
	return validateStruct(s)
}

func validateStruct(v interface{}) error {
	validate := validator.New()

	err := validate.Struct(v)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
