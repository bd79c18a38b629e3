package mapper

import (
	"github.com/wichananm65/user-registry/internal/domain/dto"
	"github.com/wichananm65/user-registry/internal/domain/entity"
)

// UserMapper converts between the wire DTO and the domain entity.
// It copies field by field and applies no policy.
type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(d *dto.UserDto) *entity.User {
	if d == nil {
		return nil
	}
	return &entity.User{
		ID:          d.ID,
		Email:       d.Email,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		BirthDate:   d.BirthDate,
		Address:     d.Address,
		PhoneNumber: d.PhoneNumber,
	}
}

func (m *UserMapper) ToDTO(user *entity.User) *dto.UserDto {
	if user == nil {
		return nil
	}
	return &dto.UserDto{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		BirthDate:   user.BirthDate,
		Address:     user.Address,
		PhoneNumber: user.PhoneNumber,
	}
}

func (m *UserMapper) ToDTOList(users []*entity.User) []*dto.UserDto {
	result := make([]*dto.UserDto, 0, len(users))
	for _, user := range users {
		result = append(result, m.ToDTO(user))
	}
	return result
}
