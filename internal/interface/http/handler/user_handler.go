package handler

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/user-registry/internal/domain/dto"
	"github.com/wichananm65/user-registry/internal/domain/entity"
	"github.com/wichananm65/user-registry/internal/mapper"
	"github.com/wichananm65/user-registry/internal/usecase"
)

const usersPath = "/api/v1/users"

// UserHandler adapts HTTP requests to use case calls.
type UserHandler struct {
	usecase usecase.UserUsecase
	mapper  *mapper.UserMapper
}

func NewUserHandler(usecase usecase.UserUsecase, mapper *mapper.UserMapper) *UserHandler {
	return &UserHandler{usecase: usecase, mapper: mapper}
}

func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get(usersPath, h.getAllUsers)
	router.Post(usersPath, h.createUser)
	router.Get(usersPath+"/birthDate", h.getUsersByBirthDateRange)
	// PUT and PATCH share the field-present merge.
	router.Put(usersPath+"/:id", h.updateUser)
	router.Patch(usersPath+"/:id", h.updateUser)
	router.Delete(usersPath+"/:email", h.deleteUser)
}

func (h *UserHandler) getAllUsers(c *fiber.Ctx) error {
	users, err := h.usecase.GetAllUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(h.mapper.ToDTOList(users))
}

func (h *UserHandler) createUser(c *fiber.Ctx) error {
	payload := new(dto.UserDto)
	if err := c.BodyParser(payload); err != nil {
		return fmt.Errorf("decode user body: %w", err)
	}

	user, err := h.usecase.CreateUser(c.UserContext(), payload)
	if err != nil {
		return err
	}
	if user == nil {
		return c.Status(fiber.StatusBadRequest).Send(nil)
	}
	return c.Status(fiber.StatusCreated).JSON(h.mapper.ToDTO(user))
}

func (h *UserHandler) updateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fmt.Errorf("parse user id: %w", err)
	}

	payload := new(dto.UserDto)
	if err := c.BodyParser(payload); err != nil {
		return fmt.Errorf("decode user body: %w", err)
	}

	user, err := h.usecase.UpdateUser(c.UserContext(), id, payload)
	if err != nil {
		return err
	}
	return c.JSON(h.mapper.ToDTO(user))
}

func (h *UserHandler) deleteUser(c *fiber.Ctx) error {
	// path rules, not query rules: "+" stays a plus
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return fmt.Errorf("decode email: %w", err)
	}
	if err := h.usecase.DeleteUser(c.UserContext(), email); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) getUsersByBirthDateRange(c *fiber.Ctx) error {
	from, err := parseDateQuery(c, "fromDate")
	if err != nil {
		return err
	}
	to, err := parseDateQuery(c, "toDate")
	if err != nil {
		return err
	}

	users, err := h.usecase.GetUsersByBirthDateRange(c.UserContext(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(h.mapper.ToDTOList(users))
}

func parseDateQuery(c *fiber.Ctx, key string) (entity.Date, error) {
	raw := c.Query(key)
	date, err := entity.ParseDate(raw)
	if err != nil {
		return entity.Date{}, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Invalid date: %s, expected yyyy-MM-dd", raw))
	}
	return date, nil
}
