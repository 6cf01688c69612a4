package controllerImp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cropstock/entities"
	"cropstock/pkg/user/repository"
)

// AuthCtrl is a lookup-table login, not an access-control design: one
// configured employee number bypasses the table with full permissions.
type AuthCtrl struct {
	users         repository.UserRepository
	adminEmployee string
}

func New(users repository.UserRepository, adminEmployee string) *AuthCtrl {
	return &AuthCtrl{users: users, adminEmployee: adminEmployee}
}

type loginReq struct {
	EmployeeNumber string `json:"employee_number"`
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.EmployeeNumber == h.adminEmployee {
		return c.JSON(http.StatusOK, entities.User{
			ID:              uuid.NewString(),
			EmployeeNumber:  h.adminEmployee,
			Name:            "Admin User",
			StockMovement:   "Yes",
			AdminControl:    "YES",
			QC:              "Yes",
			DailyCheck:      "Yes",
			WorkshopControl: "Yes",
			Operations:      "Yes",
		})
	}
	u, err := h.users.FindByEmployee(req.EmployeeNumber)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Employee not found"})
	}
	return c.JSON(http.StatusOK, u)
}

func (h *AuthCtrl) ListUsers(c echo.Context) error {
	out, err := h.users.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.User{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AuthCtrl) CreateUser(c echo.Context) error {
	var u entities.User
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if err := h.users.Create(&u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}
