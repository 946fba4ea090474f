package controllers

import (
	"github.com/gin-gonic/gin"

	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type TeamController struct {
	teamService services.TeamServiceInterface
}

func NewTeamController(teamService services.TeamServiceInterface) *TeamController {
	return &TeamController{teamService: teamService}
}

func (t *TeamController) ListTeamMembers(c *gin.Context) {
	members, err := t.teamService.ListTeamMembers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Team members fetched successfully")
}
