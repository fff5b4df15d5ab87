package request

import (
	"time"

	"hotel-management/internal/usecase/queries"
)

type ReportQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	TopCount  *int   `form:"top_count" binding:"omitempty,min=1"`
}

func (q ReportQuery) Window() queries.DateWindow {
	return window(q.StartDate, q.EndDate)
}

type MonthlyPerformanceQuery struct {
	Year *int `form:"year" binding:"omitempty,min=1,max=9999"`
}

type CompareReportsRequest struct {
	Period1Start string `json:"period1_start" binding:"required,datetime=2006-01-02"`
	Period1End   string `json:"period1_end" binding:"required,datetime=2006-01-02"`
	Period2Start string `json:"period2_start" binding:"required,datetime=2006-01-02"`
	Period2End   string `json:"period2_end" binding:"required,datetime=2006-01-02"`
}

func (r CompareReportsRequest) Windows() (queries.DateWindow, queries.DateWindow) {
	return window(r.Period1Start, r.Period1End), window(r.Period2Start, r.Period2End)
}

func window(start, end string) queries.DateWindow {
	return queries.DateWindow{Start: optionalDate(start), End: optionalDate(end)}
}

func optionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}
