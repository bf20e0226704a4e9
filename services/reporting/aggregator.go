package reporting

import (
	"sort"
	"time"

	"fisioagenda/models"
)

// Aggregate buckets financial records into paid and unpaid time series over
// the resolved period. Pure function of its input: re-aggregating the same
// records yields identical series.
func Aggregate(period string, anchor time.Time, records []models.ReportRecord) (*models.Report, error) {
	from, to, labels, err := ResolvePeriod(period, anchor)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Period:       period,
		From:         from,
		To:           to,
		Labels:       labels,
		PaidSeries:   make([]float64, len(labels)),
		UnpaidSeries: make([]float64, len(labels)),
	}

	stats := &report.Statistics
	for _, rec := range records {
		if rec.Date.Before(from) || !rec.Date.Before(to) {
			continue
		}
		idx := bucketIndex(period, rec.Date, len(labels))
		if idx < 0 {
			continue
		}
		if rec.Paid {
			report.PaidSeries[idx] += rec.Amount
			stats.PaidTotal += rec.Amount
			stats.PaidCount++
			if stats.PaidCount == 1 || rec.Amount > stats.PaidMax {
				stats.PaidMax = rec.Amount
			}
			if stats.PaidCount == 1 || rec.Amount < stats.PaidMin {
				stats.PaidMin = rec.Amount
			}
		} else {
			report.UnpaidSeries[idx] += rec.Amount
			stats.UnpaidTotal += rec.Amount
			stats.UnpaidCount++
		}
	}
	if stats.PaidCount > 0 {
		stats.PaidAverage = stats.PaidTotal / float64(stats.PaidCount)
	}
	return report, nil
}

// GroupArrears sums unpaid records dated before the period boundary, grouped
// by calendar month. Answers "how much unpaid backlog exists before now",
// independent of the selected period.
func GroupArrears(before time.Time, records []models.ReportRecord) []models.ArrearsEntry {
	byMonth := make(map[string]*models.ArrearsEntry)
	for _, rec := range records {
		if rec.Paid || !rec.Date.Before(before) {
			continue
		}
		month := rec.Date.Format("2006-01")
		entry, ok := byMonth[month]
		if !ok {
			entry = &models.ArrearsEntry{Month: month}
			byMonth[month] = entry
		}
		entry.Amount += rec.Amount
		entry.Count++
	}

	entries := make([]models.ArrearsEntry, 0, len(byMonth))
	for _, entry := range byMonth {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Month < entries[j].Month })
	return entries
}

// BucketRecords lists every individual record falling in one bucket of the
// period, for the day-of-period detail view.
func BucketRecords(period string, anchor time.Time, bucket int, records []models.ReportRecord) ([]models.ReportRecord, error) {
	from, to, labels, err := ResolvePeriod(period, anchor)
	if err != nil {
		return nil, err
	}

	var matched []models.ReportRecord
	for _, rec := range records {
		if rec.Date.Before(from) || !rec.Date.Before(to) {
			continue
		}
		if bucketIndex(period, rec.Date, len(labels)) == bucket {
			matched = append(matched, rec)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.Before(matched[j].Date) })
	return matched, nil
}
