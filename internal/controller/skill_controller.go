package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/madhuri-perumalla/CareerValidAI/internal/service"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

type SkillController struct {
	skillService *service.SkillService
}

func NewSkillController(skillService *service.SkillService) *SkillController {
	return &SkillController{skillService: skillService}
}

// AddSkill scores and appends a manually declared skill.
// @Summary Add a manual skill
// @Tags Skills
// @Accept json
// @Produce json
// @Param request body service.AddSkillRequest true "Skill submission"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /skills/add [post]
func (c *SkillController) AddSkill(ctx *gin.Context) {
	var req service.AddSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.skillService.AddSkill(ctx.Request.Context(), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
