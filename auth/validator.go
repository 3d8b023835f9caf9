package auth

import (
	"fmt"
	"job-chat/domain"
	"job-chat/errors"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// RegisterRequest is the self-service sign-up payload. Only candidates and
// employers sign up on their own; admin and service accounts are provisioned.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=12,max=72"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Role        string `json:"role" validate:"required,self_service_role"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("self_service_role", func(fl validator.FieldLevel) bool {
		switch domain.Role(fl.Field().String()) {
		case domain.RoleCandidate, domain.RoleEmployer:
			return true
		}
		return false
	})
	return v
}

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if !isPasswordComplex(req.Password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

type charClass uint8

const (
	upper charClass = 1 << iota
	lower
	digit
	special
	allClasses = upper | lower | digit | special
)

// isPasswordComplex requires one rune of each class.
func isPasswordComplex(s string) bool {
	var seen charClass
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			seen |= upper
		case unicode.IsLower(r):
			seen |= lower
		case unicode.IsNumber(r):
			seen |= digit
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			seen |= special
		}
	}
	return seen == allClasses
}
