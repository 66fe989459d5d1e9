package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafaeldias/pos-backoffice/apperr"
	"github.com/rafaeldias/pos-backoffice/services"
	"github.com/rafaeldias/pos-backoffice/utils"
)

type SessionController struct {
	Service *services.SessionService
}

func NewSessionController(service *services.SessionService) *SessionController {
	return &SessionController{Service: service}
}

// OpenSession -> POST /table-sessions
func (sc *SessionController) OpenSession(c *gin.Context) {
	var req struct {
		TableID *uint `json:"table_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.Validation("table_id is required and must be an integer"))
		return
	}

	session, err := sc.Service.Open(*req.TableID)
	if err != nil {
		c.Error(err)
		return
	}

	utils.InfoLogger.Printf("Session %d opened for table %d", session.ID, session.TableID)
	utils.RespondJSON(c, http.StatusCreated, "Session opened", nil)
}

// ListSessions -> GET /table-sessions
func (sc *SessionController) ListSessions(c *gin.Context) {
	sessions, err := sc.Service.List()
	if err != nil {
		c.Error(err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of table sessions", sessions)
}

// CloseSession -> PATCH /table-sessions/:id
func (sc *SessionController) CloseSession(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Error(apperr.Validation("invalid session id"))
		return
	}

	if err := sc.Service.Close(uint(id)); err != nil {
		c.Error(err)
		return
	}

	utils.InfoLogger.Printf("Session %d closed", id)
	utils.RespondJSON(c, http.StatusOK, "Session closed", nil)
}
