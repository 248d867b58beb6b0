package calendar

import (
	"time"

	"github.com/katiamach/weather-travel-planner/internal/model"
)

const dateLayout = "2006-01-02"

// MemorialDay returns the last Monday of May in the given year.
func MemorialDay(year int) time.Time {
	day := time.Date(year, time.May, 31, 0, 0, 0, 0, time.UTC)
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// MemorialDayWeekend returns the Saturday to Monday holiday weekend.
func MemorialDayWeekend(year int) model.HolidayWeekend {
	monday := MemorialDay(year)

	return model.HolidayWeekend{
		Name:  "Memorial Day weekend",
		Year:  year,
		Start: monday.AddDate(0, 0, -2).Format(dateLayout),
		End:   monday.Format(dateLayout),
	}
}
