package services

import (
	"math"
	"time"
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// MondayWeekday maps a timestamp to a Monday-first weekday index
// (Monday=0 .. Sunday=6), regardless of the platform's week-start default.
func MondayWeekday(value time.Time) int {
	return (int(value.Weekday()) + 6) % 7
}

// WeekdayNames is indexed by MondayWeekday.
var WeekdayNames = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
