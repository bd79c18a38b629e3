package dto

import (
	"errors"
	"net/mail"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/wichananm65/user-registry/internal/domain/entity"
)

// UserDto is the wire shape of a user. Nil fields encode as JSON null and,
// on update, mean "leave unchanged".
type UserDto struct {
	ID          *int64       `json:"id" validate:"omitempty,gt=0"`
	Email       *string      `json:"email" validate:"required,notblank,mailbox"`
	FirstName   *string      `json:"firstName" validate:"required,notblank"`
	LastName    *string      `json:"lastName" validate:"required,notblank"`
	BirthDate   *entity.Date `json:"birthDate" validate:"required"`
	Address     *string      `json:"address"`
	PhoneNumber *string      `json:"phoneNumber"`
}

// messages maps "Field.tag" to the text reported to clients.
var messages = map[string]string{
	"ID.gt":              "ID must be a positive number",
	"Email.required":     "Email is required",
	"Email.notblank":     "Email is required",
	"Email.mailbox":      "Invalid email format",
	"FirstName.required": "First name is required",
	"FirstName.notblank": "First name is required",
	"LastName.required":  "Last name is required",
	"LastName.notblank":  "Last name is required",
	"BirthDate.required": "Birth date is required",
}

// ErrIDPresent is reported when a create request carries an id.
var ErrIDPresent = errors.New("ID must be null")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = validate.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
			return isMailbox(fl.Field().String())
		})
	})
	return validate
}

// isMailbox accepts a bare addr-spec such as "a@example.com" or "a@x";
// display names and angle brackets are rejected.
func isMailbox(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}

// Validate checks the declared constraints and returns the message of the
// first violated one, in field declaration order.
func (d *UserDto) Validate() error {
	err := instance().Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	first := fieldErrs[0]
	if msg, ok := messages[first.StructField()+"."+first.Tag()]; ok {
		return errors.New(msg)
	}
	return errors.New(first.Error())
}

// ValidateForCreate additionally requires the id to be absent. The id is the
// first declared field, so its violation is reported before any other.
func (d *UserDto) ValidateForCreate() error {
	if d.ID != nil && *d.ID > 0 {
		return ErrIDPresent
	}
	return d.Validate()
}
