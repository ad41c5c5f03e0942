package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fakeuser/internal/domain"
)

// UserGenerator produces fields for an unsaved user.
type UserGenerator interface {
	GenerateUser() domain.UserFields
}

// FakeHandler serves generated users without persisting them.
type FakeHandler struct {
	generator UserGenerator
	logger    logrus.FieldLogger
}

func NewFakeHandler(generator UserGenerator, logger logrus.FieldLogger) *FakeHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &FakeHandler{generator: generator, logger: logger}
}

func (h *FakeHandler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestIDMiddleware(), requestLogger(h.logger), corsMiddleware())

	router.GET("/health", healthCheck)
	router.GET("/fake/user", h.getFakeUser)
}

// FakeUserResponse carries the generated uuid in the id field.
type FakeUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
	Age   int    `json:"age"`
}

func (h *FakeHandler) getFakeUser(c *gin.Context) {
	f := h.generator.GenerateUser()
	c.JSON(http.StatusOK, FakeUserResponse{
		ID:    f.UUID,
		Name:  f.Name,
		Email: f.Email,
		Phone: f.Phone,
		City:  f.City,
		Age:   f.Age,
	})
}
