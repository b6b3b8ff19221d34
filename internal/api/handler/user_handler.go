package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/service"
	"github.com/Employeest/employeest-be/pkg/responses"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Search lists users matching an optional keyword, for assignee pickers.
// @Summary Search the user directory
// @Tags User
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "match against username, email or name"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} responses.Response{data=[]dto.UserResponse}
// @Router /api/v1/users [get]
func (h *UserHandler) Search(c *gin.Context) {
	var query dto.UserSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	users, total, err := h.userService.Search(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.PageSuccess(c, users, total, query.GetPage(), query.GetPageSize())
}

// GetByID returns a single user's public profile.
// @Summary Get a user by id
// @Tags User
// @Produce json
// @Security ApiKeyAuth
// @Param id path int64 true "user ID"
// @Success 200 {object} responses.Response{data=dto.UserResponse}
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid user ID", err.Error())
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, user)
}
