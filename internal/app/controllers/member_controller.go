package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/buddybridge/backend/internal/app/models/dto"
	"github.com/buddybridge/backend/internal/app/services"
	"github.com/buddybridge/backend/internal/middleware"
)

// MemberController handles member read endpoints
type MemberController struct {
	memberService *services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService *services.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// GetMemberByID retrieves a member summary
// @Summary Get member by ID
// @Description Retrieves a member's public profile
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} dto.APIResponse{data=dto.MemberResponse} "Member retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid member ID"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/{id} [get]
func (c *MemberController) GetMemberByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid member ID").
			WithDetails("Member ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	member, err := c.memberService.GetMember(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      member,
		Timestamp: time.Now(),
	})
}

// GetProfile retrieves the authenticated member's profile
// @Summary Get own profile
// @Description Retrieves the profile of the authenticated member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MemberResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/me [get]
func (c *MemberController) GetProfile(ctx *gin.Context) {
	memberID, ok := authenticatedMemberID(ctx)
	if !ok {
		return
	}

	member, err := c.memberService.GetMember(ctx, memberID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      member,
		Timestamp: time.Now(),
	})
}
