package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/OpenHoursHQ/openhours/internal/hours"
	"github.com/OpenHoursHQ/openhours/internal/http/api"
)

// TimezonesModule mounts the timezone catalog businesses pick from.
func TimezonesModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/timezones", listTimezones)
	})
}

// GET /api/timezones
func listTimezones(ctx *gin.Context) (any, *api.APIError) {
	return gin.H{"timezones": hours.Timezones}, nil
}
