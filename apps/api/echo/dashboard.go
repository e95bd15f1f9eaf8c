package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/stats"
)

type dashboardApi struct {
	deps ServerDeps
}

func registerDashboardAPI(g *echo.Group, deps ServerDeps) {
	api := dashboardApi{deps: deps}
	g.GET("/dashboard", api.retrieve)
}

type DashboardResponse struct {
	stats.Summary
	SubjectAverages map[string]int `json:"subjectAverages"`
}

// retrieve returns the cohort dashboard for the requested scope. "Present
// today" counts against the scope's date when given, the current day otherwise.
func (api *dashboardApi) retrieve(ctx echo.Context) error {
	scope, agg, err := scopedAggregator(ctx, api.deps)
	if err != nil {
		return err
	}

	today := isoToday()
	if scope.Date != "" {
		today = scope.Date
	}

	view := agg.View()
	subjects := make(map[string]int)
	for _, r := range view.Assessments {
		if _, ok := subjects[r.Subject]; !ok {
			subjects[r.Subject] = agg.SubjectAverage(r.Subject)
		}
	}

	return ctx.JSON(http.StatusOK, DashboardResponse{
		Summary:         agg.Summary(today),
		SubjectAverages: subjects,
	})
}
