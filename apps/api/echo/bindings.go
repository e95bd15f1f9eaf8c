package echoapi

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/record"
	"github.com/trezcool/darasa/core/stats"
)

type SuccessResponse struct {
	Success string `json:"success"`
}

// bindScope binds the query-string scope predicates, cleans and validates them.
func bindScope(ctx echo.Context, deps ServerDeps) (record.Scope, error) {
	var scope record.Scope
	if err := ctx.Bind(&scope); err != nil {
		return record.Scope{}, errors.Wrap(err, "binding to Scope")
	}
	if err := scope.Validate(deps.Validate); err != nil {
		return record.Scope{}, err
	}
	return scope, nil
}

// scopedAggregator resolves the request's scope against the current snapshot
// and returns the memoized aggregator for the resulting view.
func scopedAggregator(ctx echo.Context, deps ServerDeps) (record.Scope, *stats.Aggregator, error) {
	scope, err := bindScope(ctx, deps)
	if err != nil {
		return record.Scope{}, nil, err
	}

	snap, err := deps.RecordSvc.Snapshot(ctx.Request().Context())
	if err != nil {
		return record.Scope{}, nil, errors.Wrap(err, "getting snapshot")
	}
	return scope, deps.StatsCache.For(scope.Apply(snap)), nil
}

func isoToday() string {
	return time.Now().UTC().Format("2006-01-02")
}
