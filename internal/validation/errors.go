package validation

import (
	"strings"

	"github.com/dmitrijs2005/driverdesk/internal/common"
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Message }

// Errors is every failed rule of one validation run, in rule order.
type Errors []FieldError

func (e Errors) Error() string {
	return strings.Join(e.Messages(), "\n")
}

func (e Errors) Is(target error) bool {
	return target == common.ErrValidation
}

// Messages returns the messages in rule order.
func (e Errors) Messages() []string {
	out := make([]string, len(e))
	for i, fe := range e {
		out[i] = fe.Message
	}
	return out
}

// Fields returns the names of the failed fields in rule order.
func (e Errors) Fields() []string {
	out := make([]string, len(e))
	for i, fe := range e {
		out[i] = fe.Field
	}
	return out
}
