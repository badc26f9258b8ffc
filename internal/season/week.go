package season

import (
	"time"

	"turkeybowl/internal/models"
)

// Resolver computes the pull week for a season: the NFL week containing US
// Thanksgiving, expressed relative to the league's season-start week. The
// provider serves stats by week number, so this is the index used for every
// pull in a run.
type Resolver struct {
	year int
	week int
}

func NewResolver(year int) *Resolver {
	r := &Resolver{year: year}
	r.week = r.thanksgivingWeek()
	return r
}

func (r *Resolver) Year() int { return r.year }

// Week returns the effective pull week.
func (r *Resolver) Week() int { return r.week }

func (r *Resolver) SeasonWeek() models.SeasonWeek {
	return models.SeasonWeek{Year: r.year, Week: r.week}
}

// SetWeek overrides the effective pull week, e.g. to probe the week before
// Thanksgiving while testing a live season. Zero or negative reverts to the
// computed week. The calendar anchors are never recomputed.
func (r *Resolver) SetWeek(week int) {
	if week > 0 {
		r.week = week
		return
	}
	r.week = r.thanksgivingWeek()
}

// thanksgivingWeek subtracts the season-start calendar week from the
// Thanksgiving calendar week and adds one, since pull weeks are 1-indexed.
// If the season starts calendar week 36 and Thanksgiving falls in calendar
// week 48, the pull week is 13.
func (r *Resolver) thanksgivingWeek() int {
	_, start := SeasonStart(r.year).ISOWeek()
	_, thx := Thanksgiving(r.year).ISOWeek()
	return thx - start + 1
}

// SeasonStart returns the first Monday of September, the anchor for NFL Week
// 1. The opener itself can land later in that week (2012 kicked off on a
// Wednesday); the Monday anchor keeps the week arithmetic stable regardless.
func SeasonStart(year int) time.Time {
	for d := 1; d <= 7; d++ {
		t := time.Date(year, time.September, d, 0, 0, 0, 0, time.UTC)
		if t.Weekday() == time.Monday {
			return t
		}
	}
	return time.Time{}
}

// Thanksgiving returns the fourth Thursday of November.
func Thanksgiving(year int) time.Time {
	thursdays := 0
	for d := 1; d <= 30; d++ {
		t := time.Date(year, time.November, d, 0, 0, 0, 0, time.UTC)
		if t.Weekday() == time.Thursday {
			thursdays++
			if thursdays == 4 {
				return t
			}
		}
	}
	return time.Time{}
}
