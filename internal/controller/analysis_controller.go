package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/madhuri-perumalla/CareerValidAI/internal/service"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

// AnalysisController hosts the three analysis endpoints. Each writes its
// own disjoint session field, so independent analyses never clobber each
// other.
type AnalysisController struct {
	githubService    *service.GitHubService
	resumeService    *service.ResumeService
	portfolioService *service.PortfolioService
}

func NewAnalysisController(github *service.GitHubService, resume *service.ResumeService, portfolio *service.PortfolioService) *AnalysisController {
	return &AnalysisController{
		githubService:    github,
		resumeService:    resume,
		portfolioService: portfolio,
	}
}

type githubAnalysisRequest struct {
	SessionID  string `json:"sessionId" binding:"required"`
	ProfileURL string `json:"profileUrl" binding:"required,url"`
	Token      string `json:"token"`
}

type resumeAnalysisRequest struct {
	SessionID   string `json:"sessionId" binding:"required"`
	FileContent string `json:"fileContent" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	FileType    string `json:"fileType" binding:"required,oneof=pdf docx"`
}

type portfolioAnalysisRequest struct {
	SessionID    string `json:"sessionId" binding:"required"`
	PortfolioURL string `json:"portfolioUrl" binding:"required,url"`
}

// AnalyzeGitHub fetches and analyzes a GitHub profile.
// @Summary Analyze a GitHub profile
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body githubAnalysisRequest true "Profile URL and optional token"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /analyze/github [post]
func (c *AnalysisController) AnalyzeGitHub(ctx *gin.Context) {
	var req githubAnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	githubData, err := c.githubService.Analyze(ctx.Request.Context(), req.SessionID, req.ProfileURL, req.Token)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, githubData)
}

// AnalyzeResume analyzes client-extracted resume text.
// @Summary Analyze resume text
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body resumeAnalysisRequest true "Extracted resume text"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /analyze/resume [post]
func (c *AnalysisController) AnalyzeResume(ctx *gin.Context) {
	var req resumeAnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resumeData, err := c.resumeService.Analyze(ctx.Request.Context(), req.SessionID, req.FileName, req.FileType, req.FileContent)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, resumeData)
}

// AnalyzePortfolio fetches and reviews a portfolio site.
// @Summary Analyze a portfolio URL
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body portfolioAnalysisRequest true "Portfolio URL"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /analyze/portfolio [post]
func (c *AnalysisController) AnalyzePortfolio(ctx *gin.Context) {
	var req portfolioAnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	portfolioData, err := c.portfolioService.Analyze(ctx.Request.Context(), req.SessionID, req.PortfolioURL)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, portfolioData)
}
