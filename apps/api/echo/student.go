package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/record"
	"github.com/trezcool/darasa/core/risk"
	"github.com/trezcool/darasa/core/stats"
)

type studentApi struct {
	deps ServerDeps
}

func registerStudentAPI(g *echo.Group, deps ServerDeps) {
	api := studentApi{deps: deps}

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.GET("/at-risk", api.queryAtRisk)
	sg.POST("/at-risk/notify", api.notifyAtRisk)
	sg.GET("/:id/performance", api.performance)
}

type (
	StudentResponse struct {
		record.Student
		Stats stats.StudentStats `json:"stats"`
	}

	AtRiskResponse struct {
		risk.AtRisk
		Name      string `json:"name"`
		StudentID string `json:"studentCode"`
	}
)

// query lists the scoped roster with each student's metrics, in roster order.
func (api *studentApi) query(ctx echo.Context) error {
	_, agg, err := scopedAggregator(ctx, api.deps)
	if err != nil {
		return err
	}

	view := agg.View()
	students := make([]StudentResponse, 0, len(view.Students))
	for _, st := range view.Students {
		students = append(students, StudentResponse{
			Student: st,
			Stats:   agg.StudentStats(st.ID),
		})
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) performance(ctx echo.Context) error {
	_, agg, err := scopedAggregator(ctx, api.deps)
	if err != nil {
		return err
	}

	id := ctx.Param("id")
	st, ok := agg.View().StudentByID(id)
	if !ok {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, StudentResponse{
		Student: st,
		Stats:   agg.StudentStats(st.ID),
	})
}

func (api *studentApi) queryAtRisk(ctx echo.Context) error {
	_, agg, err := scopedAggregator(ctx, api.deps)
	if err != nil {
		return err
	}

	flagged := api.deps.Classifier.Classify(agg)
	view := agg.View()
	out := make([]AtRiskResponse, 0, len(flagged))
	for _, ar := range flagged {
		res := AtRiskResponse{AtRisk: ar}
		if st, ok := view.StudentByID(ar.StudentID); ok {
			res.Name = st.Name
			res.StudentID = st.StudentID
		}
		out = append(out, res)
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *studentApi) notifyAtRisk(ctx echo.Context) error {
	_, agg, err := scopedAggregator(ctx, api.deps)
	if err != nil {
		return err
	}

	flagged := api.deps.Classifier.Classify(agg)
	api.deps.Notifier.NotifyAtRisk(agg, flagged)
	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: fmt.Sprintf("%d at-risk students notified to staff", len(flagged)),
	})
}
