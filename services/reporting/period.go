package reporting

import (
	"errors"
	"fmt"
	"time"

	"fisioagenda/models"
	"fisioagenda/utils"
)

// ErrUnknownPeriod rejects period kinds other than day, week, month.
var ErrUnknownPeriod = errors.New("unknown report period")

var weekLabels = []string{"Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato"}

// ResolvePeriod derives the half-open [from, to) range and bucket labels for
// a period kind and anchor date. The week range is Monday through Saturday,
// matching the calendar's business week.
func ResolvePeriod(period string, anchor time.Time) (from, to time.Time, labels []string, err error) {
	switch period {
	case models.PeriodDay:
		from = utils.StartOfDay(anchor)
		to = utils.AddDays(from, 1)
		labels = make([]string, 24)
		for h := range labels {
			labels[h] = fmt.Sprintf("%02d:00", h)
		}
	case models.PeriodWeek:
		from = utils.StartOfWeek(anchor)
		to = utils.AddDays(from, 6)
		labels = weekLabels
	case models.PeriodMonth:
		from = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		to = from.AddDate(0, 1, 0)
		days := int(to.Sub(from).Hours() / 24)
		labels = make([]string, days)
		for d := range labels {
			labels[d] = fmt.Sprintf("%d", d+1)
		}
	default:
		err = ErrUnknownPeriod
	}
	return from, to, labels, err
}

// bucketIndex maps a record timestamp to its bucket in the period's label
// space. Returns -1 for timestamps with no bucket (e.g. a Sunday record in a
// week report).
func bucketIndex(period string, t time.Time, bucketCount int) int {
	var idx int
	switch period {
	case models.PeriodDay:
		idx = t.Hour()
	case models.PeriodWeek:
		idx = int(t.Weekday()) - int(time.Monday)
	case models.PeriodMonth:
		idx = t.Day() - 1
	default:
		return -1
	}
	if idx < 0 || idx >= bucketCount {
		return -1
	}
	return idx
}
