package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/OpenHoursHQ/openhours/internal/cache"
	"github.com/OpenHoursHQ/openhours/internal/db"
	"github.com/OpenHoursHQ/openhours/internal/events"
	"github.com/OpenHoursHQ/openhours/internal/hours"
	"github.com/OpenHoursHQ/openhours/internal/http/api"
	"github.com/OpenHoursHQ/openhours/internal/http/api/business/packets"
	"github.com/OpenHoursHQ/openhours/internal/model"
)

// HoursAdminModule mounts owner-side schedule editing (JWT required).
func HoursAdminModule(store db.Store) api.Module {
	ctl := newBusinessController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUT("/businesses/:id/hours", ctl.setHours)
		c.DELETE("/businesses/:id/hours", ctl.clearHours)
		c.PUT("/businesses/:id/hours/days/:day", ctl.setDayHours)
		c.DELETE("/businesses/:id/hours/days/:day", ctl.clearDayHours)
	})
}

// GET /api/businesses/:id/hours
func (b *BusinessController) getHours(ctx *gin.Context) (any, *api.APIError) {
	id, apiError := businessID(ctx)
	if apiError != nil {
		return nil, apiError
	}
	working, apiError := b.loadHours(ctx, id)
	if apiError != nil {
		return nil, apiError
	}
	return hoursResponse(working), nil
}

// GET /api/businesses/:id/hours/days/:day
func (b *BusinessController) getDayHours(ctx *gin.Context) (any, *api.APIError) {
	id, apiError := businessID(ctx)
	if apiError != nil {
		return nil, apiError
	}
	day, apiError := dayIndex(ctx)
	if apiError != nil {
		return nil, apiError
	}
	working, apiError := b.loadHours(ctx, id)
	if apiError != nil {
		return nil, apiError
	}
	return packets.DayHoursResponse{
		DayIndex:  day,
		Intervals: hours.ExtractDayIntervals(working.Intervals, day),
	}, nil
}

// GET /api/businesses/:id/open?at=<unix>
func (b *BusinessController) getOpenState(ctx *gin.Context) (any, *api.APIError) {
	id, apiError := businessID(ctx)
	if apiError != nil {
		return nil, apiError
	}
	working, apiError := b.loadHours(ctx, id)
	if apiError != nil {
		return nil, apiError
	}
	at := time.Now()
	if raw := ctx.Query("at"); raw != "" {
		unix, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid at timestamp"}
		}
		at = time.Unix(unix, 0)
	}
	return packets.OpenResponse{
		Open:       working.IsOpenAt(at),
		TimezoneID: working.TimezoneID,
	}, nil
}

// saveHours persists, refreshes the cache and notifies subscribers.
func (b *BusinessController) saveHours(ctx *gin.Context, id int, working hours.WorkingHours) (hours.WorkingHours, *api.APIError) {
	normalized := working.Normalized()
	if err := b.store.SetWorkingHours(id, normalized); err != nil {
		return hours.WorkingHours{}, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save working hours"}
	}
	cache.SetWorkingHours(ctx.Request.Context(), id, normalized)
	events.PublishHoursUpdated(id, normalized)
	log.Info().Int("business_id", id).Int("intervals", len(normalized.Intervals)).Msg("working hours updated")
	return normalized, nil
}

// PUT /api/businesses/:id/hours
func (b *BusinessController) setHours(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiError := businessID(ctx)
	if apiError != nil {
		return nil, apiError
	}
	if _, apiError := b.requireOwner(user, id); apiError != nil {
		return nil, apiError
	}
	var request packets.SetHoursRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, ok := hours.TimezoneByID(request.TimezoneID); !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown timezone id"}
	}
	saved, apiError := b.saveHours(ctx, id, hours.WorkingHours{
		Intervals:  request.Intervals,
		TimezoneID: request.TimezoneID,
	})
	if apiError != nil {
		return nil, apiError
	}
	return hoursResponse(saved), nil
}

// DELETE /api/businesses/:id/hours
func (b *BusinessController) clearHours(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiError := businessID(ctx)
	if apiError != nil {
		return nil, apiError
	}
	if _, apiError := b.requireOwner(user, id); apiError != nil {
		return nil, apiError
	}
	if err := b.store.ClearWorkingHours(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not clear working hours"}
	}
	// the next read repopulates the cache from the cleared row
	cache.InvalidateWorkingHours(ctx.Request.Context(), id)
	cleared := hours.WorkingHours{}
	events.PublishHoursUpdated(id, cleared)
	log.Info().Int("business_id", id).Msg("working hours cleared")
	return hoursResponse(cleared), nil
}

// PUT /api/businesses/:id/hours/days/:day
func (b *BusinessController) setDayHours(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiError := businessID(ctx)
	if apiError != nil {
		return nil, apiError
	}
	day, apiError := dayIndex(ctx)
	if apiError != nil {
		return nil, apiError
	}
	if _, apiError := b.requireOwner(user, id); apiError != nil {
		return nil, apiError
	}
	var request packets.SetDayHoursRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	working, apiError := b.loadHours(ctx, id)
	if apiError != nil {
		return nil, apiError
	}
	if !working.IsSet() {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "set a timezone before editing day hours"}
	}
	working.Intervals = hours.ReplaceDayIntervals(working.Intervals, day, request.Intervals)
	saved, apiError := b.saveHours(ctx, id, working)
	if apiError != nil {
		return nil, apiError
	}
	return packets.DayHoursResponse{
		DayIndex:  day,
		Intervals: hours.ExtractDayIntervals(saved.Intervals, day),
	}, nil
}

// DELETE /api/businesses/:id/hours/days/:day
func (b *BusinessController) clearDayHours(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiError := businessID(ctx)
	if apiError != nil {
		return nil, apiError
	}
	day, apiError := dayIndex(ctx)
	if apiError != nil {
		return nil, apiError
	}
	if _, apiError := b.requireOwner(user, id); apiError != nil {
		return nil, apiError
	}
	working, apiError := b.loadHours(ctx, id)
	if apiError != nil {
		return nil, apiError
	}
	working.Intervals = hours.RemoveDayIntervals(working.Intervals, day)
	saved, apiError := b.saveHours(ctx, id, working)
	if apiError != nil {
		return nil, apiError
	}
	return hoursResponse(saved), nil
}
