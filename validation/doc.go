// Package validation validates configuration structs using struct tags
// (go-playground/validator) and reports failures as *errors.AppError.
//
//	type ServiceConfig struct {
//	    Name string `json:"name" validate:"required"`
//	}
//	err := validation.Validate(cfg)
package validation
