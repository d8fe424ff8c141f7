package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/pr-poehali-dev/mini-games-creator/internal/domain/error"
	coreport "github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/core"
	"github.com/pr-poehali-dev/mini-games-creator/internal/domain/port/usecase"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/api/dto"
	"github.com/pr-poehali-dev/mini-games-creator/internal/infrastructure/adapter/api/middleware"
)

// AdminHandler handles the action-dispatched /admin endpoint.
// Authorization already happened in the AdminAuth middleware.
type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// Handle dispatches the POST /admin request by its action field
func (h *AdminHandler) Handle(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		respondError(c, h.logger, errs.ErrUnauthorized)
		return
	}

	var req dto.AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Unlike the auth endpoint, a console client sending garbage is a
		// client bug worth a clear 400
		respondError(c, h.logger, errs.ErrInvalidRequest)
		return
	}

	action, err := dto.ParseAdminAction(req.Action)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	ctx := c.Request.Context()

	switch action {
	case dto.ActionGetUsers:
		users, err := h.adminUseCase.ListUsers(ctx)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		rows := make([]dto.UserRow, 0, len(users))
		for _, user := range users {
			rows = append(rows, dto.NewUserRow(user))
		}
		c.JSON(http.StatusOK, rows)

	case dto.ActionBanUser:
		if err := h.adminUseCase.BanUser(ctx, admin.ID, req.UserID); err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})

	case dto.ActionUnbanUser:
		if err := h.adminUseCase.UnbanUser(ctx, admin.ID, req.UserID); err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})

	case dto.ActionSetAdmin:
		if err := h.adminUseCase.SetAdmin(ctx, admin.ID, req.UserID, req.AdminFlag()); err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})

	case dto.ActionAddBloodPoints:
		if err := h.adminUseCase.AddBloodPoints(ctx, admin.ID, req.UserID, req.Points); err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})

	case dto.ActionAddMusic:
		input := usecase.TrackInput{
			Title:    req.Title,
			Game:     req.Game,
			URL:      req.URL,
			Duration: req.Duration,
		}
		trackID, err := h.adminUseCase.AddMusicTrack(ctx, admin.ID, input)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, ID: trackID})

	case dto.ActionRemoveMusic:
		if err := h.adminUseCase.RemoveMusicTrack(ctx, admin.ID, req.TrackID); err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})

	case dto.ActionGetMusic:
		tracks, err := h.adminUseCase.ListMusicTracks(ctx)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		rows := make([]dto.TrackRow, 0, len(tracks))
		for _, track := range tracks {
			rows = append(rows, dto.NewTrackRow(track))
		}
		c.JSON(http.StatusOK, rows)

	case dto.ActionAddPartner:
		input := usecase.PartnerInput{
			Name:        req.Name,
			URL:         req.URL,
			LogoURL:     req.LogoURL,
			Description: req.Description,
		}
		partnerID, err := h.adminUseCase.AddPartner(ctx, admin.ID, input)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, ID: partnerID})

	case dto.ActionRemovePartner:
		if err := h.adminUseCase.RemovePartner(ctx, admin.ID, req.PartnerID); err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})

	case dto.ActionGetPartners:
		partners, err := h.adminUseCase.ListPartners(ctx)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		rows := make([]dto.PartnerRow, 0, len(partners))
		for _, partner := range partners {
			rows = append(rows, dto.NewPartnerRow(partner))
		}
		c.JSON(http.StatusOK, rows)

	case dto.ActionGetAdminLogs:
		logs, err := h.adminUseCase.ListAdminLogs(ctx)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		rows := make([]dto.AdminLogRow, 0, len(logs))
		for _, log := range logs {
			rows = append(rows, dto.NewAdminLogRow(log))
		}
		c.JSON(http.StatusOK, rows)
	}
}
