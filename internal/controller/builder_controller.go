package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/madhuri-perumalla/CareerValidAI/internal/service"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

type BuilderController struct {
	builderService *service.BuilderService
}

func NewBuilderController(builderService *service.BuilderService) *BuilderController {
	return &BuilderController{builderService: builderService}
}

// BuildResume generates a resume from the session data and the form input.
// @Summary Build a resume
// @Tags Resume
// @Accept json
// @Produce json
// @Param request body service.BuildResumeRequest true "Resume form"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /resume/build [post]
func (c *BuilderController) BuildResume(ctx *gin.Context) {
	var req service.BuildResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resume, err := c.builderService.Build(ctx.Request.Context(), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, resume)
}
