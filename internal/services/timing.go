package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs at debug level how long op took since start. Use with defer.
func TrackTime(op string, start time.Time) {
	log.WithField("op", op).Debugf("took %d ms", time.Since(start).Milliseconds())
}
