package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rootguard/internal/apperr"
	"rootguard/internal/domain"
	"rootguard/internal/repository"
	"rootguard/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	persons service.PersonService
	users   service.UserService
	logger  *logrus.Logger
}

func NewHandler(persons service.PersonService, users service.UserService, logger *logrus.Logger) *Handler {
	return &Handler{
		persons: persons,
		users:   users,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	users := router.Group("/api/v1/users")
	{
		users.POST("/root", h.createRootUser)
		users.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

type personalInfoRequest struct {
	Firstname  string     `json:"firstname"`
	Middlename *string    `json:"middlename"`
	Lastname   string     `json:"lastname"`
	Sex        domain.Sex `json:"sex"`
}

type createRootUserRequest struct {
	Email        string              `json:"email"`
	Password     string              `json:"password"`
	Admin        bool                `json:"admin"`
	PersonalInfo personalInfoRequest `json:"personalInfo"`
}

type personalInfoResponse struct {
	Firstname       string     `json:"firstname"`
	Middlename      *string    `json:"middlename"`
	Lastname        string     `json:"lastname"`
	Sex             domain.Sex `json:"sex"`
	ProfileImageURL string     `json:"profileImageURL"`
}

type userResponse struct {
	ID             string               `json:"id"`
	Email          string               `json:"email"`
	Admin          bool                 `json:"admin"`
	Disabled       bool                 `json:"disabled"`
	TimeRegistered string               `json:"timeRegistered"`
	PersonalInfo   personalInfoResponse `json:"personalInfo"`
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// createRootUser inserts a person row, then a guard row referencing it.
// When the guard insert fails the person row is deleted again so a
// rejected registration leaves nothing behind.
func (h *Handler) createRootUser(c *gin.Context) {
	var req createRootUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	person, err := h.persons.Create(ctx, repository.CreatePerson{
		Firstname:  req.PersonalInfo.Firstname,
		Middlename: req.PersonalInfo.Middlename,
		Lastname:   req.PersonalInfo.Lastname,
		Sex:        req.PersonalInfo.Sex,
	})
	if err != nil {
		// nothing persisted yet, nothing to compensate
		h.renderError(c, err)
		return
	}

	user, err := h.users.Create(ctx, repository.CreateUser{
		Email:    req.Email,
		Password: req.Password,
		PersonID: person.ID,
		Admin:    req.Admin,
	})
	if err != nil {
		if delErr := h.persons.Delete(ctx, person.ID); delErr != nil {
			h.logger.WithError(delErr).Errorf("compensating delete of person %d failed", person.ID)
		}
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse{
		ID:             user.ID,
		Email:          user.Email,
		Admin:          user.Admin,
		Disabled:       user.Disabled,
		TimeRegistered: user.TimeRegistered.Format(time.RFC3339),
		PersonalInfo: personalInfoResponse{
			Firstname:       person.Firstname,
			Middlename:      person.Middlename,
			Lastname:        person.Lastname,
			Sex:             person.Sex,
			ProfileImageURL: person.ProfileImageURL,
		},
	})
}

// renderError maps domain errors to their status code and collapses
// everything else into a generic 500 without leaking detail.
func (h *Handler) renderError(c *gin.Context, err error) {
	if appErr, ok := apperr.From(err); ok {
		c.JSON(appErr.Status(), gin.H{"message": appErr.Message})
		return
	}
	h.logger.WithError(err).Error("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
}
