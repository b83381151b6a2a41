package endpoints

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/marquee/internal/engine"
	"github.com/Nixie-Tech-LLC/marquee/internal/http/api"
	"github.com/Nixie-Tech-LLC/marquee/internal/http/api/display/packets"
	"github.com/Nixie-Tech-LLC/marquee/internal/model"
	"github.com/Nixie-Tech-LLC/marquee/internal/notify"
)

type DisplayController struct {
	engine *engine.Engine
	hub    *notify.Hub
}

// DisplayModule mounts the public read endpoints polled by screens. The
// live socket route is only mounted when hub is set.
func DisplayModule(e *engine.Engine, hub *notify.Hub) api.Module {
	ctl := &DisplayController{engine: e, hub: hub}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/rows", ctl.listRows)
		c.GET("/rows/:id/slides", ctl.rowSlides)
		c.GET("/rows/:id/active", ctl.activeSlide)

		if hub != nil {
			c.Group.GET("/rows/:id/live", ctl.live)
		}
	})
}

func mapSlide(s model.Slide) packets.SlideResponse {
	return packets.SlideResponse{ID: s.ID, Kind: s.Kind, Title: s.Title, UpdatedAt: s.UpdatedAt}
}

// etagFor hashes the seed and the ordered visible ids with their update
// times, so any edit, reshuffle or new seed window changes the tag.
func etagFor(slides []model.Slide, seed int64) string {
	h := sha256.New()
	h.Write([]byte(strconv.FormatInt(seed, 10)))
	for _, s := range slides {
		h.Write(s.ID[:])
		h.Write([]byte(s.UpdatedAt.UTC().Format(time.RFC3339Nano)))
	}
	return `"` + hex.EncodeToString(h.Sum(nil)[:16]) + `"`
}

// GET /api/display/rows
func (d *DisplayController) listRows(ctx *gin.Context) (any, *api.APIError) {
	rows, err := d.engine.Rows(ctx)
	if err != nil {
		log.Error().Err(err).Str("route", ctx.FullPath()).Msg("failed to list rows")
		return nil, api.ErrorFrom(err)
	}

	out := make([]packets.RowSummary, len(rows))
	for i, r := range rows {
		out[i] = packets.RowSummary{ID: r.ID, Name: r.Name, DisplayOrder: r.DisplayOrder}
	}
	return out, nil
}

// GET /api/display/rows/:id/slides[?at=RFC3339]
func (d *DisplayController) rowSlides(ctx *gin.Context) (any, *api.APIError) {
	rowID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return nil, api.BadRequest("invalid id")
	}

	var at time.Time
	if raw := ctx.Query("at"); raw != "" {
		at, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, api.BadRequest("at must be an RFC3339 timestamp")
		}
	}

	view, err := d.engine.VisibleSlides(ctx, rowID, at)
	if err != nil {
		log.Error().Err(err).Str("row_id", rowID.String()).Str("route", ctx.FullPath()).
			Msg("failed to materialize row")
		return nil, api.ErrorFrom(err)
	}

	etag := etagFor(view.Slides, view.Seed)
	ctx.Header("ETag", etag)
	if match := ctx.GetHeader("If-None-Match"); match == etag {
		log.Debug().Str("row_id", rowID.String()).Str("etag", etag).Msg("row unchanged")
		ctx.Status(http.StatusNotModified)
		ctx.Writer.WriteHeaderNow()
		return nil, nil
	}

	resp := packets.RowSlidesResponse{
		RowID:   view.Row.ID,
		Name:    view.Row.Name,
		Rotated: view.Rotated,
		Slides:  make([]packets.SlideResponse, len(view.Slides)),
	}
	if view.Rotated {
		seed, next := view.Seed, view.NextRotation
		resp.Seed = &seed
		resp.NextRotationAt = &next
	}
	for i, s := range view.Slides {
		resp.Slides[i] = mapSlide(s)
	}
	return resp, nil
}

// GET /api/display/rows/:id/active
func (d *DisplayController) activeSlide(ctx *gin.Context) (any, *api.APIError) {
	rowID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return nil, api.BadRequest("invalid id")
	}

	s, ok, err := d.engine.ActiveSlide(ctx, rowID)
	if err != nil {
		log.Error().Err(err).Str("row_id", rowID.String()).Str("route", ctx.FullPath()).
			Msg("failed to pick active slide")
		return nil, api.ErrorFrom(err)
	}
	if !ok {
		ctx.Status(http.StatusNoContent)
		ctx.Writer.WriteHeaderNow()
		return nil, nil
	}
	return mapSlide(s), nil
}
