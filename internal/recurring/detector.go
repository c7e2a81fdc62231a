// Package recurring detects repeating charges in a group's expense history
// and derives bill suggestions from them.
package recurring

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ejifeanyi/obito/internal/models"
)

const (
	// minOccurrences is how many times a charge must repeat before it
	// counts as a series. A single expense is never a pattern.
	minOccurrences = 2

	// maxKeywords caps how much of a description feeds the bucket key, so
	// trailing detail ("ref 2024-03") does not split otherwise-equal series.
	maxKeywords = 3

	// Average-gap ceilings, in days, for each frequency class. A series
	// whose average gap exceeds every ceiling is yearly.
	maxWeeklyGap    = 8
	maxBiweeklyGap  = 18
	maxMonthlyGap   = 35
	maxQuarterlyGap = 100
)

// Detect finds repeating charges in the given expenses.
//
// Algorithm:
//   - Bucket expenses by rounded amount plus the first keywords of the
//     description, so "Netflix 49.99" and "netflix 50.01" land together.
//   - Discard buckets with fewer than two occurrences.
//   - For each series, order by creation time and measure the gaps between
//     consecutive occurrences in days.
//   - Classify frequency from the average gap and score confidence from the
//     gap spread: perfectly regular gaps score 100, erratic ones approach 0.
//
// Each pattern carries the description, amount, and category of the series'
// latest occurrence, and a next due date projected from it. Patterns come
// back sorted by confidence descending; ties keep first-appearance order of
// the series in the input, so identical inputs always produce identical
// output.
func Detect(expenses []models.Expense) []models.RecurringPattern {
	buckets := make(map[string][]models.Expense)
	var order []string
	for _, exp := range expenses {
		key := bucketKey(exp)
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], exp)
	}

	var patterns []models.RecurringPattern
	for _, key := range order {
		series := buckets[key]
		if len(series) < minOccurrences {
			continue
		}

		sort.SliceStable(series, func(i, j int) bool {
			return series[i].CreatedAt.Before(series[j].CreatedAt)
		})

		gaps := make([]float64, 0, len(series)-1)
		for i := 1; i < len(series); i++ {
			gaps = append(gaps, series[i].CreatedAt.Sub(series[i-1].CreatedAt).Hours()/24)
		}

		avgGap := mean(gaps)
		frequency := classifyFrequency(avgGap)

		latest := series[len(series)-1]
		category := latest.Category
		if category == "" {
			category = models.DefaultCategory
		}

		patterns = append(patterns, models.RecurringPattern{
			Description: latest.Description,
			Amount:      latest.Amount,
			Category:    category,
			Frequency:   frequency,
			NextDueDate: NextDueDate(latest.CreatedAt, frequency),
			Confidence:  confidence(gaps, avgGap),
			Occurrences: len(series),
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Confidence > patterns[j].Confidence
	})
	return patterns
}

// bucketKey groups near-identical charges: the amount rounded to the nearest
// whole unit, joined with the description's leading keywords.
func bucketKey(exp models.Expense) string {
	return fmt.Sprintf("%d|%s", int(math.Round(exp.Amount)), strings.Join(keywords(exp.Description), "|"))
}

// keywords extracts up to maxKeywords lowercased words longer than three
// characters, in order of appearance. Short words ("the", "of", "to") carry
// no signal for matching.
func keywords(description string) []string {
	words := strings.Fields(strings.ToLower(description))
	kept := make([]string, 0, maxKeywords)
	for _, w := range words {
		if utf8.RuneCountInString(w) > 3 {
			kept = append(kept, w)
			if len(kept) == maxKeywords {
				break
			}
		}
	}
	return kept
}

// classifyFrequency maps an average gap in days to the closest billing cycle.
func classifyFrequency(avgGapDays float64) models.Frequency {
	switch {
	case avgGapDays <= maxWeeklyGap:
		return models.Weekly
	case avgGapDays <= maxBiweeklyGap:
		return models.Biweekly
	case avgGapDays <= maxMonthlyGap:
		return models.Monthly
	case avgGapDays <= maxQuarterlyGap:
		return models.Quarterly
	default:
		return models.Yearly
	}
}

// confidence scores gap regularity from 0 to 100: the ratio of the gaps'
// standard deviation to their average, inverted onto a percentage scale.
// Zero average gap means same-day repeats, which are perfectly regular.
func confidence(gaps []float64, avgGap float64) int {
	if avgGap == 0 {
		return 100
	}
	score := 100 - (stdDev(gaps, avgGap)/avgGap)*100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}

// NextDueDate projects the next occurrence of a charge from its latest one.
// Month- and year-based cycles follow calendar arithmetic, so a January 31
// monthly charge lands on March 3 in a non-leap year rather than a phantom
// February 31.
func NextDueDate(latest time.Time, frequency models.Frequency) time.Time {
	switch frequency {
	case models.Weekly:
		return latest.AddDate(0, 0, 7)
	case models.Biweekly:
		return latest.AddDate(0, 0, 14)
	case models.Quarterly:
		return latest.AddDate(0, 3, 0)
	case models.Yearly:
		return latest.AddDate(1, 0, 0)
	default:
		// Monthly, and anything unrecognized.
		return latest.AddDate(0, 1, 0)
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the population standard deviation around the given mean.
func stdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
