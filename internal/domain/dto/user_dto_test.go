package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/user-registry/internal/domain/entity"
)

func ptr[T any](v T) *T {
	return &v
}

func validDto() *UserDto {
	return &UserDto{
		Email:     ptr("a@x"),
		FirstName: ptr("A"),
		LastName:  ptr("B"),
		BirthDate: ptr(entity.NewDate(2000, time.January, 1)),
	}
}

func TestUserDto_ValidateForCreate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *UserDto)
		wantErr string
	}{
		{"valid", func(d *UserDto) {}, ""},
		{"valid with optional fields", func(d *UserDto) {
			d.Address = ptr("Main st")
			d.PhoneNumber = ptr("")
		}, ""},
		{"dotted domain", func(d *UserDto) { d.Email = ptr("jane.doe@example.com") }, ""},
		{"missing email", func(d *UserDto) { d.Email = nil }, "Email is required"},
		{"blank email", func(d *UserDto) { d.Email = ptr("   ") }, "Email is required"},
		{"malformed email", func(d *UserDto) { d.Email = ptr("not-an-email") }, "Invalid email format"},
		{"display name email", func(d *UserDto) { d.Email = ptr("Jane <jane@example.com>") }, "Invalid email format"},
		{"missing first name", func(d *UserDto) { d.FirstName = nil }, "First name is required"},
		{"blank first name", func(d *UserDto) { d.FirstName = ptr("") }, "First name is required"},
		{"blank last name", func(d *UserDto) { d.LastName = ptr("\t") }, "Last name is required"},
		{"missing birth date", func(d *UserDto) { d.BirthDate = nil }, "Birth date is required"},
		{"negative id", func(d *UserDto) { d.ID = ptr(int64(-1)) }, "ID must be a positive number"},
		{"positive id on create", func(d *UserDto) { d.ID = ptr(int64(5)) }, "ID must be null"},
		{"first failing field wins", func(d *UserDto) {
			d.Email = nil
			d.LastName = nil
		}, "Email is required"},
		{"id reported before later fields", func(d *UserDto) {
			d.ID = ptr(int64(5))
			d.Email = nil
		}, "ID must be null"},
		{"negative id reported before later fields", func(d *UserDto) {
			d.ID = ptr(int64(-2))
			d.FirstName = nil
		}, "ID must be a positive number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDto()
			tt.mutate(d)

			err := d.ValidateForCreate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestUserDto_ValidateAllowsPositiveID(t *testing.T) {
	d := validDto()
	d.ID = ptr(int64(3))

	assert.NoError(t, d.Validate())
	assert.ErrorIs(t, d.ValidateForCreate(), ErrIDPresent)
}
