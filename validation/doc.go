// Package validation provides input validation for cerealpipe configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used for config structs.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    URL     string `validate:"required,url"`
//	    Timeout time.Duration
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", cfg.Name)
//	err := v.Validate()
package validation
