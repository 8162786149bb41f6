package validation

import (
	"sync"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	conform      *mold.Transformer
	validateOnce sync.Once
	conformOnce  sync.Once
)

func Validate() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Conform returns the transformer applying `mod` struct tags, e.g. trim.
func Conform() *mold.Transformer {
	conformOnce.Do(func() {
		conform = modifiers.New()
	})

	return conform
}
