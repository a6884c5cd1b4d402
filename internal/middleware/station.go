package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	StationKey     = "station"
	StationHeader  = "X-Station-ID"
	DefaultStation = "default"
)

var stationPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// IdentifyStation extracts the packing station from the X-Station-ID header.
// Requests without the header are attributed to the default station.
func IdentifyStation() gin.HandlerFunc {
	return func(c *gin.Context) {
		station := strings.TrimSpace(c.GetHeader(StationHeader))
		if station == "" {
			c.Set(StationKey, DefaultStation)
			c.Next()
			return
		}

		if !stationPattern.MatchString(station) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "invalid " + StationHeader + " header"})
			c.Abort()
			return
		}

		c.Set(StationKey, station)
		c.Next()
	}
}

// GetStation retrieves the station from the context
func GetStation(c *gin.Context) string {
	station, exists := c.Get(StationKey)
	if !exists {
		return DefaultStation
	}
	return station.(string)
}
