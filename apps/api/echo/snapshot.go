package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type snapshotApi struct {
	deps ServerDeps
}

func registerSnapshotAPI(g *echo.Group, deps ServerDeps) {
	api := snapshotApi{deps: deps}
	g.POST("/snapshot/refresh", api.refresh)
}

type SnapshotResponse struct {
	Version       string `json:"version"`
	Students      int    `json:"students"`
	Attendance    int    `json:"attendance"`
	Assessments   int    `json:"assessments"`
	Participation int    `json:"participation"`
	Behavioral    int    `json:"behavioral"`
}

// refresh refetches all collections from the external layer. On failure the
// previous snapshot stays in place and keeps serving reads.
func (api *snapshotApi) refresh(ctx echo.Context) error {
	snap, err := api.deps.RecordSvc.Refresh(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "refreshing snapshot")
	}
	api.deps.StatsCache.Evict(snap.Version)

	return ctx.JSON(http.StatusOK, SnapshotResponse{
		Version:       snap.Version,
		Students:      len(snap.Students),
		Attendance:    len(snap.Attendance),
		Assessments:   len(snap.Assessments),
		Participation: len(snap.Participation),
		Behavioral:    len(snap.Behavioral),
	})
}
