package util

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// ProductionStamp is the date part of a box code.
type ProductionStamp struct {
	DayOfWeek  int // 1=Monday ... 7=Sunday
	WeekOfYear int // ISO week
	Year       int // ISO week-numbering year
}

// LoadPlantLocation loads the plant timezone, falling back to UTC.
func LoadPlantLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Errorf("Failed to load location '%s': %v. Falling back to UTC.", name, err)
		return time.UTC
	}
	return loc
}

// StampAt returns the day of week, ISO week and year of t in the plant timezone.
// The year is the ISO week-numbering year so that week 1 and week 52/53 never
// straddle two printed years.
func StampAt(t time.Time, loc *time.Location) ProductionStamp {
	local := t.In(loc)
	year, week := local.ISOWeek()

	day := int(local.Weekday())
	if day == 0 {
		day = 7
	}
	return ProductionStamp{DayOfWeek: day, WeekOfYear: week, Year: year}
}

// ShiftAt returns the shift code working at t in the plant timezone:
// "1" 06:00-14:00, "2" 14:00-22:00, "3" 22:00-06:00.
func ShiftAt(t time.Time, loc *time.Location) string {
	h := t.In(loc).Hour()
	switch {
	case h >= 6 && h < 14:
		return "1"
	case h >= 14 && h < 22:
		return "2"
	default:
		return "3"
	}
}
