package chat

import (
	"fmt"
	"job-chat/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the structural rules of a command.
// Business rules such as body length live in the message store.
func Validate(cmd Command) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrInvalidPayload, cmd.Name(), err)
	}
	return nil
}
