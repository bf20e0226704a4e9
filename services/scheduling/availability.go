package scheduling

import (
	"context"
	"encoding/json"
	"time"

	"fisioagenda/config"
	"fisioagenda/models"
	"fisioagenda/utils"

	"go.uber.org/zap"
)

const occupancyCacheTTL = 2 * time.Minute

// BuildDaySlots subdivides a day's operating window into fixed slots and
// marks each one occupied when any appointment overlaps it. Intervals are
// half-open: an appointment ending exactly at a slot's start does not occupy
// it. Cancelled appointments hold no time.
func BuildDaySlots(day time.Time, appts []models.Appointment, startHour, endHour, slotMinutes int) []models.Slot {
	windowStart := utils.At(day, startHour, 0)
	windowEnd := utils.At(day, endHour, 0)
	step := time.Duration(slotMinutes) * time.Minute

	var slots []models.Slot
	for t := windowStart; t.Before(windowEnd); t = t.Add(step) {
		slot := models.Slot{Start: t, End: t.Add(step)}
		for i := range appts {
			if appts[i].Status == models.StatusCancelled {
				continue
			}
			if appts[i].Start.Before(slot.End) && appts[i].End.After(slot.Start) {
				slot.IsOccupied = true
				break
			}
		}
		slots = append(slots, slot)
	}
	return slots
}

// BuildOccupancyForecast sums appointment minutes inside the operating window
// and classifies the day's pressure. Advisory only: double-booked minutes
// count twice and the rate may exceed 100.
func BuildOccupancyForecast(day time.Time, appts []models.Appointment, startHour, endHour int) models.OccupancyForecast {
	windowStart := utils.At(day, startHour, 0)
	windowEnd := utils.At(day, endHour, 0)
	windowMinutes := int(windowEnd.Sub(windowStart).Minutes())

	occupied := 0
	for i := range appts {
		if appts[i].Status == models.StatusCancelled {
			continue
		}
		start := appts[i].Start
		end := appts[i].End
		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		if end.After(start) {
			occupied += int(end.Sub(start).Minutes())
		}
	}

	rate := 0.0
	if windowMinutes > 0 {
		rate = float64(occupied) / float64(windowMinutes) * 100
	}
	label := models.OccupancyLow
	switch {
	case rate > 80:
		label = models.OccupancyHigh
	case rate > 60:
		label = models.OccupancyMedium
	}

	return models.OccupancyForecast{
		Date:            utils.FormatISODate(day),
		OccupiedMinutes: occupied,
		OccupancyRate:   rate,
		Label:           label,
	}
}

// DaySlots returns the slot grid for a calendar day, fetched fresh from the
// record store.
func (s *DefaultSchedulingService) DaySlots(ctx context.Context, day time.Time) ([]models.Slot, error) {
	dayStart := utils.StartOfDay(day)
	appts, err := s.Repo.GetRange(ctx, dayStart, utils.AddDays(dayStart, 1))
	if err != nil {
		return nil, err
	}
	cfg := config.AppConfig
	return BuildDaySlots(dayStart, appts, cfg.DayStartHour, cfg.DayEndHour, cfg.SlotMinutes), nil
}

// DayOccupancy returns the day's occupancy forecast, served from the redis
// occupancy board when fresh.
func (s *DefaultSchedulingService) DayOccupancy(ctx context.Context, day time.Time) (*models.OccupancyForecast, error) {
	key := occupancyKey(day)
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var forecast models.OccupancyForecast
			if err := json.Unmarshal([]byte(raw), &forecast); err == nil {
				return &forecast, nil
			}
		}
	}
	return s.RefreshOccupancy(ctx, day)
}

// RefreshOccupancy recomputes a day's forecast from the record store and
// writes it to the occupancy board.
func (s *DefaultSchedulingService) RefreshOccupancy(ctx context.Context, day time.Time) (*models.OccupancyForecast, error) {
	dayStart := utils.StartOfDay(day)
	appts, err := s.Repo.GetRange(ctx, dayStart, utils.AddDays(dayStart, 1))
	if err != nil {
		return nil, err
	}
	cfg := config.AppConfig
	forecast := BuildOccupancyForecast(dayStart, appts, cfg.DayStartHour, cfg.DayEndHour)

	if s.Cache != nil {
		if raw, err := json.Marshal(forecast); err == nil {
			if err := s.Cache.Set(ctx, occupancyKey(day), raw, occupancyCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache occupancy forecast",
					zap.String("date", forecast.Date), zap.Error(err))
			}
		}
	}
	return &forecast, nil
}

// invalidateOccupancyFor refreshes the occupancy board for every day touched
// by the given appointments. Board staleness is tolerable, so failures are
// swallowed; the minute tick will catch up.
func (s *DefaultSchedulingService) invalidateOccupancyFor(ctx context.Context, appts []models.Appointment) {
	seen := make(map[string]bool)
	for i := range appts {
		date := utils.FormatISODate(appts[i].Start)
		if seen[date] {
			continue
		}
		seen[date] = true
		if _, err := s.RefreshOccupancy(ctx, appts[i].Start); err != nil {
			utils.GetLogger().Warn("failed to refresh occupancy board",
				zap.String("date", date), zap.Error(err))
		}
	}
}

func occupancyKey(day time.Time) string {
	return "occupancy:" + utils.FormatISODate(day)
}
