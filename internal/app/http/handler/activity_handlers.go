package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"signupservice/internal/app/dto"
)

type activityParams struct {
	Name string `uri:"name" binding:"required"`
}

type participantQuery struct {
	Email string `form:"email"`
}

// participantRequest binds and normalizes the activity name and email
// shared by signup and removal.
func (h *Handler) participantRequest(c *gin.Context) (name, email string, ok bool) {
	var p activityParams
	if err := c.ShouldBindUri(&p); err != nil {
		h.badRequest(c, "activity name is required")
		return "", "", false
	}

	var q participantQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, "invalid query")
		return "", "", false
	}
	q.Email = strings.TrimSpace(q.Email)
	if q.Email == "" {
		h.badRequest(c, "email is required")
		return "", "", false
	}

	return p.Name, q.Email, true
}

func (h *Handler) ListActivities(c *gin.Context) {
	list, err := h.ActivitySvc.ListActivities(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make(dto.Activities, len(list))
	for _, a := range list {
		resp[a.Name] = dto.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    append([]string{}, a.Participants...),
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Signup(c *gin.Context) {
	name, email, ok := h.participantRequest(c)
	if !ok {
		return
	}

	msg, err := h.ActivitySvc.Join(c.Request.Context(), name, email)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message{Message: msg})
}

func (h *Handler) RemoveParticipant(c *gin.Context) {
	name, email, ok := h.participantRequest(c)
	if !ok {
		return
	}

	msg, err := h.ActivitySvc.Leave(c.Request.Context(), name, email)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message{Message: msg})
}

func (h *Handler) Health(c *gin.Context) {
	list, err := h.ActivitySvc.ListActivities(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Health{Status: "ok", Activities: len(list)})
}
