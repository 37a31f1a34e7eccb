package dashboard

import (
	"fmt"
	"time"

	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/domain/period"
)

// maxMonthsBack bounds the weeks picker.
const maxMonthsBack = 24

// monthAbbreviations maps months to Portuguese abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// ListWeeksInput represents the input for the weeks picker.
type ListWeeksInput struct {
	Reference  time.Time
	MonthsBack *int // Optional, defaults to the configured value
}

// WeekOption is one selectable week.
type WeekOption struct {
	Interval period.Interval
	Label    string
	Current  bool
}

// ListWeeksOutput represents the output of the weeks picker.
type ListWeeksOutput struct {
	Weeks []WeekOption
}

// ListWeeksUseCase lists the weeks a driver can pick on the week dashboard.
type ListWeeksUseCase struct {
	defaultMonthsBack int
}

// NewListWeeksUseCase creates a new ListWeeksUseCase instance.
func NewListWeeksUseCase(defaultMonthsBack int) *ListWeeksUseCase {
	return &ListWeeksUseCase{
		defaultMonthsBack: defaultMonthsBack,
	}
}

// Execute lists the trailing weeks, most recent first.
func (uc *ListWeeksUseCase) Execute(input ListWeeksInput) (*ListWeeksOutput, error) {
	monthsBack := uc.defaultMonthsBack
	if input.MonthsBack != nil {
		monthsBack = *input.MonthsBack
	}
	if monthsBack < 0 || monthsBack > maxMonthsBack {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonthsBack,
			fmt.Sprintf("months must be between 0 and %d", maxMonthsBack),
			domainerror.ErrInvalidMonthsBack,
		)
	}

	intervals := period.TrailingWeeks(input.Reference, monthsBack)
	weeks := make([]WeekOption, 0, len(intervals))
	for i, w := range intervals {
		weeks = append(weeks, WeekOption{
			Interval: w,
			Label:    weekLabel(w.Start, w.End),
			Current:  i == 0,
		})
	}

	return &ListWeeksOutput{
		Weeks: weeks,
	}, nil
}

// weekLabel returns "1-7 Nov" or "29 Nov - 5 Dez".
func weekLabel(start, end time.Time) string {
	if start.Month() == end.Month() {
		return fmt.Sprintf("%d-%d %s", start.Day(), end.Day(), monthAbbreviations[start.Month()])
	}
	return fmt.Sprintf("%d %s - %d %s",
		start.Day(), monthAbbreviations[start.Month()],
		end.Day(), monthAbbreviations[end.Month()])
}
