package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madhuri-perumalla/CareerValidAI/internal/service"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

type SessionController struct {
	sessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

type initSessionRequest struct {
	SessionID string `json:"sessionId"`
}

// InitSession returns the session for the given id, creating it when
// absent; a missing id gets a server-generated one.
// @Summary Initialize or resume a session
// @Tags Session
// @Accept json
// @Produce json
// @Param request body initSessionRequest false "Optional client-held session id"
// @Success 200 {object} util.Response
// @Router /session [post]
func (c *SessionController) InitSession(ctx *gin.Context) {
	var req initSessionRequest
	// Body is optional; ignore bind errors for an empty payload.
	_ = ctx.ShouldBindJSON(&req)

	session, err := c.sessionService.GetOrCreate(req.SessionID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// GetSession returns the session aggregate plus its chat log.
// @Summary Get session data
// @Tags Session
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /session/{sessionId} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	view, err := c.sessionService.Get(ctx.Param("sessionId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// ExportSession streams the full session as a JSON attachment.
// @Summary Export session data
// @Tags Session
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} service.SessionExport
// @Failure 404 {object} util.Response
// @Router /session/{sessionId}/export [get]
func (c *SessionController) ExportSession(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	export, err := c.sessionService.Export(sessionID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="careervalid-session-%s.json"`, sessionID))
	ctx.JSON(http.StatusOK, export)
}
