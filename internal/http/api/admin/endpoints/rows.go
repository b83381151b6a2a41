package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/marquee/internal/engine"
	"github.com/Nixie-Tech-LLC/marquee/internal/http/api"
	"github.com/Nixie-Tech-LLC/marquee/internal/http/api/admin/packets"
	"github.com/Nixie-Tech-LLC/marquee/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

type RowController struct {
	engine *engine.Engine
}

// RowModule mounts the authenticated row and slide management endpoints.
func RowModule(e *engine.Engine) api.Module {
	ctl := &RowController{engine: e}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/rows", ctl.listRows)
		c.PUT("/rows", ctl.reorderRows)

		c.PUT("/rows/:id/slides", ctl.reorderSlides)
		c.POST("/rows/:id/republish", ctl.republishRow)

		c.POST("/slides/:id/snooze", ctl.snoozeSlide)
	})
}

func idParam(ctx *gin.Context) (uuid.UUID, *api.APIError) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, api.BadRequest("invalid id")
	}
	return id, nil
}

// subject names the token holder in audit logs.
func subject(ctx *gin.Context) string {
	sub, ok := middleware.Subject(ctx)
	if !ok {
		return "anonymous"
	}
	return sub
}

func mapRow(r model.Row) packets.RowResponse {
	resp := packets.RowResponse{
		ID:              r.ID,
		Name:            r.Name,
		DisplayOrder:    r.DisplayOrder,
		RotationEnabled: r.RotationEnabled,
		RotationCount:   r.RotationCount,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.RotationInterval != nil {
		s := string(*r.RotationInterval)
		resp.RotationInterval = &s
	}
	return resp
}

// GET /api/admin/rows
func (r *RowController) listRows(ctx *gin.Context) (any, *api.APIError) {
	rows, err := r.engine.Rows(ctx)
	if err != nil {
		log.Error().Err(err).Str("route", ctx.FullPath()).Msg("failed to list rows")
		return nil, api.ErrorFrom(err)
	}

	out := make([]packets.RowResponse, len(rows))
	for i, row := range rows {
		out[i] = mapRow(row)
	}
	return out, nil
}

// PUT /api/admin/rows
func (r *RowController) reorderRows(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ReorderRowsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		log.Warn().Err(err).Str("route", ctx.FullPath()).Msg("invalid JSON in row reorder request")
		return nil, api.BadRequest(err.Error())
	}

	if err := r.engine.ReorderRows(ctx, request.RowIDs); err != nil {
		log.Error().Err(err).Str("route", ctx.FullPath()).Str("subject", subject(ctx)).Msg("failed to reorder rows")
		return nil, api.ErrorFrom(err)
	}
	log.Info().Str("subject", subject(ctx)).Int("count", len(request.RowIDs)).Msg("rows reordered")
	return packets.ReorderResponse{Message: "rows reordered", Count: len(request.RowIDs)}, nil
}

// PUT /api/admin/rows/:id/slides
func (r *RowController) reorderSlides(ctx *gin.Context) (any, *api.APIError) {
	rowID, apiErr := idParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.ReorderSlidesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		log.Warn().Err(err).Str("row_id", rowID.String()).Str("route", ctx.FullPath()).
			Msg("invalid JSON in slide reorder request")
		return nil, api.BadRequest(err.Error())
	}

	if err := r.engine.ReorderSlides(ctx, rowID, request.SlideIDs); err != nil {
		log.Error().Err(err).Str("row_id", rowID.String()).Str("route", ctx.FullPath()).
			Msg("failed to reorder slides")
		return nil, api.ErrorFrom(err)
	}
	log.Info().Str("subject", subject(ctx)).Str("row_id", rowID.String()).
		Int("count", len(request.SlideIDs)).Msg("slides reordered")
	return packets.ReorderResponse{Message: "slides reordered", Count: len(request.SlideIDs)}, nil
}

// POST /api/admin/rows/:id/republish
func (r *RowController) republishRow(ctx *gin.Context) (any, *api.APIError) {
	rowID, apiErr := idParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	res, err := r.engine.RepublishRow(ctx, rowID)
	if err != nil {
		log.Error().Err(err).Str("row_id", rowID.String()).Str("route", ctx.FullPath()).
			Msg("failed to republish row")
		return nil, api.ErrorFrom(err)
	}
	log.Info().Str("subject", subject(ctx)).Str("row_id", rowID.String()).
		Int("count", res.Count).Msg("row republished")
	return packets.RepublishResponse{RowID: rowID, Count: res.Count, SlideIDs: res.SlideIDs}, nil
}

// POST /api/admin/slides/:id/snooze
func (r *RowController) snoozeSlide(ctx *gin.Context) (any, *api.APIError) {
	slideID, apiErr := idParam(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	s, err := r.engine.Snooze(ctx, slideID)
	if err != nil {
		log.Error().Err(err).Str("slide_id", slideID.String()).Str("route", ctx.FullPath()).
			Msg("failed to snooze slide")
		return nil, api.ErrorFrom(err)
	}
	log.Info().Str("subject", subject(ctx)).Str("slide_id", slideID.String()).Msg("slide snoozed")
	if s.TemporaryUnpublishUntil == nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "snooze not recorded"}
	}
	return packets.SnoozeResponse{SlideID: s.ID, RowID: s.RowID, Until: *s.TemporaryUnpublishUntil}, nil
}
