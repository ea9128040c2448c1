package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OpenHoursHQ/openhours/internal/cache"
	"github.com/OpenHoursHQ/openhours/internal/db"
	"github.com/OpenHoursHQ/openhours/internal/hours"
	"github.com/OpenHoursHQ/openhours/internal/http/api"
	"github.com/OpenHoursHQ/openhours/internal/http/api/business/packets"
	"github.com/OpenHoursHQ/openhours/internal/model"
)

// BusinessPublicModule mounts the unauthenticated profile surface.
func BusinessPublicModule(store db.Store) api.Module {
	ctl := newBusinessController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/businesses/:id", ctl.getBusiness)
		c.PUBLIC_GET("/businesses/:id/hours", ctl.getHours)
		c.PUBLIC_GET("/businesses/:id/hours/days/:day", ctl.getDayHours)
		c.PUBLIC_GET("/businesses/:id/open", ctl.getOpenState)
	})
}

// BusinessAdminModule mounts owner-side business management (JWT required).
func BusinessAdminModule(store db.Store) api.Module {
	ctl := newBusinessController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/businesses", ctl.listBusinesses)
		c.POST("/businesses", ctl.createBusiness)
		c.PUT("/businesses/:id", ctl.updateBusiness)
	})
}

type BusinessController struct {
	store db.Store
}

func newBusinessController(store db.Store) *BusinessController {
	return &BusinessController{store: store}
}

func businessID(ctx *gin.Context) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid business id"}
	}
	return id, nil
}

// The interval model treats out-of-range day indexes as a caller
// contract, so the HTTP edge is where they get rejected.
func dayIndex(ctx *gin.Context) (int, *api.APIError) {
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil || day < 0 || day > 6 {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "day index must be 0..6"}
	}
	return day, nil
}

// loadHours serves the normalized schedule, cache first.
func (b *BusinessController) loadHours(ctx *gin.Context, id int) (hours.WorkingHours, *api.APIError) {
	if working, ok := cache.GetWorkingHours(ctx.Request.Context(), id); ok {
		return working, nil
	}
	working, err := b.store.GetWorkingHours(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return hours.WorkingHours{}, &api.APIError{Code: http.StatusNotFound, Message: "business not found"}
		}
		return hours.WorkingHours{}, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load working hours"}
	}
	working = working.Normalized()
	cache.SetWorkingHours(ctx.Request.Context(), id, working)
	return working, nil
}

// requireOwner loads the business and checks it belongs to the caller.
func (b *BusinessController) requireOwner(user *model.User, id int) (*model.Business, *api.APIError) {
	business, err := b.store.GetBusinessByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "business not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load business"}
	}
	if business.CreatedBy != user.ID {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "not your business"}
	}
	return business, nil
}

func hoursResponse(working hours.WorkingHours) packets.HoursResponse {
	return packets.HoursResponse{
		TimezoneID: working.TimezoneID,
		Intervals:  working.Intervals,
		Set:        working.IsSet(),
	}
}

func businessResponse(business model.Business, working hours.WorkingHours, open bool) packets.BusinessResponse {
	details := model.BusinessDetails{
		Hours:    working,
		Location: business.Location(),
	}
	return packets.BusinessResponse{
		ID:      business.ID,
		Name:    business.Name,
		Details: details,
		Set:     details.IsSet(),
		Open:    open,
	}
}

// GET /api/businesses/:id
func (b *BusinessController) getBusiness(ctx *gin.Context) (any, *api.APIError) {
	id, apiError := businessID(ctx)
	if apiError != nil {
		return nil, apiError
	}
	business, err := b.store.GetBusinessByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "business not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load business"}
	}
	working, apiError := b.loadHours(ctx, id)
	if apiError != nil {
		return nil, apiError
	}
	return businessResponse(*business, working, working.IsOpenAt(time.Now())), nil
}

// GET /api/businesses (owned by the caller)
func (b *BusinessController) listBusinesses(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := b.store.ListBusinesses(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list businesses"}
	}
	out := make([]packets.BusinessResponse, 0, len(all))
	for _, business := range all {
		out = append(out, businessResponse(business, hours.WorkingHours{}, false))
	}
	return out, nil
}

// POST /api/businesses
func (b *BusinessController) createBusiness(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateBusinessRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	location := model.BusinessLocation{
		Address:   request.Address,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
	}
	business, err := b.store.CreateBusiness(request.Name, location, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create business"}
	}
	return businessResponse(business, hours.WorkingHours{}, false), nil
}

// PUT /api/businesses/:id
func (b *BusinessController) updateBusiness(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiError := businessID(ctx)
	if apiError != nil {
		return nil, apiError
	}
	if _, apiError := b.requireOwner(user, id); apiError != nil {
		return nil, apiError
	}
	var request packets.UpdateBusinessRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := b.store.UpdateBusiness(id, request.Name, request.Address, request.Latitude, request.Longitude); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update business"}
	}
	updated, err := b.store.GetBusinessByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reload business"}
	}
	return businessResponse(*updated, hours.WorkingHours{}, false), nil
}
