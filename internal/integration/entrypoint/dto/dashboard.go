package dto

import (
	"sort"

	"github.com/driver-ledger/backend/internal/application/usecase/dashboard"
	"github.com/driver-ledger/backend/internal/domain/period"
)

// IntervalResponse represents a resolved date interval.
type IntervalResponse struct {
	Kind      string `json:"kind"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// PlatformRevenueResponse represents revenue earned on one platform.
type PlatformRevenueResponse struct {
	Platform string  `json:"platform"`
	Revenue  float64 `json:"revenue"`
}

// PeriodDataResponse represents the aggregated figures of a period.
type PeriodDataResponse struct {
	Interval          IntervalResponse          `json:"interval"`
	Revenue           float64                   `json:"revenue"`
	Expenses          float64                   `json:"expenses"`
	Balance           float64                   `json:"balance"`
	TotalTrips        int                       `json:"total_trips"`
	HoursWorked       float64                   `json:"hours_worked"`
	KmDriven          float64                   `json:"km_driven"`
	PeriodGoal        float64                   `json:"period_goal"`
	Performance       float64                   `json:"performance"`
	RevenueByPlatform []PlatformRevenueResponse `json:"revenue_by_platform"`
	ExpenseList       []ExpenseResponse         `json:"expense_list"`
}

// AllocationResponse represents how a monthly goal is spread over working days.
type AllocationResponse struct {
	DailyGoal   float64 `json:"daily_goal"`
	WorkingDays float64 `json:"working_days"`
}

// PeriodSummaryResponse represents the response for the period summary API.
type PeriodSummaryResponse struct {
	Data        PeriodDataResponse  `json:"data"`
	Allocation  *AllocationResponse `json:"allocation,omitempty"`
	DisplayGoal float64             `json:"display_goal"`
	HasGoal     bool                `json:"has_goal"`
}

// InsightResponse represents the dashboard insight card.
type InsightResponse struct {
	Kind      string   `json:"kind"`
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Surplus   *float64 `json:"surplus,omitempty"`
	Platform  string   `json:"platform,omitempty"`
	Percent   *float64 `json:"percent,omitempty"`
	Remaining *float64 `json:"remaining,omitempty"`
}

// InsightSummaryResponse represents the insight together with today's summary.
type InsightSummaryResponse struct {
	Insight InsightResponse       `json:"insight"`
	Summary PeriodSummaryResponse `json:"summary"`
}

// WeekOptionResponse represents an entry of the weeks picker.
type WeekOptionResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"label"`
	Current   bool   `json:"current"`
}

// WeekListResponse represents the response for the weeks picker API.
type WeekListResponse struct {
	Weeks []WeekOptionResponse `json:"weeks"`
}

// MonthTrendResponse represents one month of the annual view.
type MonthTrendResponse struct {
	Month int                `json:"month"`
	Label string             `json:"label"`
	Data  PeriodDataResponse `json:"data"`
}

// MonthlyTrendResponse represents the response for the annual trend API.
type MonthlyTrendResponse struct {
	Year   int                  `json:"year"`
	Months []MonthTrendResponse `json:"months"`
	Total  PeriodDataResponse   `json:"total"`
}

// ToIntervalResponse converts a period.Interval to an IntervalResponse DTO.
func ToIntervalResponse(i period.Interval) IntervalResponse {
	return IntervalResponse{
		Kind:      string(i.Kind),
		StartDate: FormatDate(i.Start),
		EndDate:   FormatDate(i.End),
	}
}

// ToPeriodDataResponse converts period.PeriodData to a PeriodDataResponse DTO.
// Platforms are ordered by revenue, highest first.
func ToPeriodDataResponse(data period.PeriodData) PeriodDataResponse {
	platforms := make([]PlatformRevenueResponse, 0, len(data.RevenueByPlatform))
	for platform, revenue := range data.RevenueByPlatform {
		platforms = append(platforms, PlatformRevenueResponse{Platform: platform, Revenue: toFloat(revenue)})
	}
	sort.Slice(platforms, func(i, j int) bool {
		if platforms[i].Revenue != platforms[j].Revenue {
			return platforms[i].Revenue > platforms[j].Revenue
		}
		return platforms[i].Platform < platforms[j].Platform
	})

	expenses := make([]ExpenseResponse, len(data.Expenses))
	for i, e := range data.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}

	return PeriodDataResponse{
		Interval:          ToIntervalResponse(data.Interval),
		Revenue:           toFloat(data.Revenue),
		Expenses:          toFloat(data.ExpenseTotal),
		Balance:           toFloat(data.Balance),
		TotalTrips:        data.TotalTrips,
		HoursWorked:       toFloat(data.HoursWorked),
		KmDriven:          toFloat(data.KmDriven),
		PeriodGoal:        toFloat(data.PeriodGoal),
		Performance:       toFloat(data.Performance),
		RevenueByPlatform: platforms,
		ExpenseList:       expenses,
	}
}

// ToPeriodSummaryResponse converts a GetPeriodSummaryOutput to a PeriodSummaryResponse DTO.
func ToPeriodSummaryResponse(output *dashboard.GetPeriodSummaryOutput) PeriodSummaryResponse {
	response := PeriodSummaryResponse{
		Data:        ToPeriodDataResponse(output.Data),
		DisplayGoal: toFloat(output.DisplayGoal),
		HasGoal:     output.HasGoal,
	}
	if output.Allocation != nil {
		response.Allocation = &AllocationResponse{
			DailyGoal:   toFloat(output.Allocation.DailyGoal),
			WorkingDays: toFloat(output.Allocation.WorkingDays),
		}
	}
	return response
}

// ToInsightResponse converts a period.Insight to an InsightResponse DTO.
// Numeric fields are only present for the insight kinds that carry them.
func ToInsightResponse(insight period.Insight) InsightResponse {
	response := InsightResponse{
		Kind:     string(insight.Kind),
		Title:    insight.Title,
		Message:  insight.Message,
		Platform: insight.Platform,
	}
	switch insight.Kind {
	case period.InsightGoalMet:
		surplus := toFloat(insight.Surplus)
		response.Surplus = &surplus
	case period.InsightProgress:
		if insight.Percent.IsPositive() || insight.Remaining.IsPositive() {
			percent, remaining := toFloat(insight.Percent), toFloat(insight.Remaining)
			response.Percent = &percent
			response.Remaining = &remaining
		}
	}
	return response
}

// ToInsightSummaryResponse converts a GetInsightOutput to an InsightSummaryResponse DTO.
func ToInsightSummaryResponse(output *dashboard.GetInsightOutput) InsightSummaryResponse {
	return InsightSummaryResponse{
		Insight: ToInsightResponse(output.Insight),
		Summary: ToPeriodSummaryResponse(output.Summary),
	}
}

// ToWeekListResponse converts a ListWeeksOutput to a WeekListResponse DTO.
func ToWeekListResponse(output *dashboard.ListWeeksOutput) WeekListResponse {
	response := WeekListResponse{Weeks: make([]WeekOptionResponse, len(output.Weeks))}
	for i, w := range output.Weeks {
		response.Weeks[i] = WeekOptionResponse{
			StartDate: FormatDate(w.Interval.Start),
			EndDate:   FormatDate(w.Interval.End),
			Label:     w.Label,
			Current:   w.Current,
		}
	}
	return response
}

// ToMonthlyTrendResponse converts a GetMonthlyTrendOutput to a MonthlyTrendResponse DTO.
func ToMonthlyTrendResponse(output *dashboard.GetMonthlyTrendOutput) MonthlyTrendResponse {
	response := MonthlyTrendResponse{
		Year:   output.Year,
		Months: make([]MonthTrendResponse, len(output.Months)),
		Total:  ToPeriodDataResponse(output.Total),
	}
	for i, m := range output.Months {
		response.Months[i] = MonthTrendResponse{
			Month: int(m.Month),
			Label: m.Label,
			Data:  ToPeriodDataResponse(m.Data),
		}
	}
	return response
}
