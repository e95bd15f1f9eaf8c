package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/record"
)

type attendanceApi struct {
	deps ServerDeps
}

func registerAttendanceAPI(g *echo.Group, deps ServerDeps) {
	api := attendanceApi{deps: deps}

	ag := g.Group("/attendance")
	ag.GET("/locks", api.lockStatus)
	ag.POST("/confirm", api.confirm)
	ag.POST("/unconfirm", api.unconfirm)
}

type (
	LockRequest struct {
		Date    string `query:"date" json:"date" validate:"required,isodate"`
		ClassID string `query:"class_id" json:"classId" validate:"required"`
	}

	LockStatusResponse struct {
		Date      string `json:"date"`
		ClassID   string `json:"classId"`
		Confirmed bool   `json:"confirmed"`
	}
)

func (lr *LockRequest) Validate(validate *validator.Validate) error {
	lr.Date = core.CleanString(lr.Date)
	lr.ClassID = core.CleanString(lr.ClassID)
	return validate.Struct(lr)
}

func (api *attendanceApi) lockStatus(ctx echo.Context) error {
	var data LockRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LockRequest")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, LockStatusResponse{
		Date:      data.Date,
		ClassID:   data.ClassID,
		Confirmed: api.deps.LockSvc.IsConfirmed(data.Date, data.ClassID),
	})
}

// confirm locks the day's attendance sheet for a class, handing the scoped
// records to the external confirmation layer.
func (api *attendanceApi) confirm(ctx echo.Context) error {
	var data LockRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LockRequest")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	snap, err := api.deps.RecordSvc.Snapshot(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting snapshot")
	}
	scope := record.Scope{ClassID: data.ClassID, Date: data.Date}
	records := scope.Apply(snap).Attendance

	if err := api.deps.LockSvc.Confirm(ctx.Request().Context(), data.Date, data.ClassID, records); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, LockStatusResponse{
		Date:      data.Date,
		ClassID:   data.ClassID,
		Confirmed: true,
	})
}

func (api *attendanceApi) unconfirm(ctx echo.Context) error {
	var data LockRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LockRequest")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	if err := api.deps.LockSvc.Unconfirm(ctx.Request().Context(), data.Date, data.ClassID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, LockStatusResponse{
		Date:      data.Date,
		ClassID:   data.ClassID,
		Confirmed: false,
	})
}
