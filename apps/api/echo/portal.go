package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/masomo-lms/portal/core"
	"github.com/masomo-lms/portal/core/contenttype"
	"github.com/masomo-lms/portal/core/course"
	"github.com/masomo-lms/portal/core/portal"
)

type portalApi struct {
	svc *portal.Service
}

func registerPortalAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *portal.Service) {
	api := portalApi{svc: svc}

	// un-authed endpoints
	g.GET("/terms/current", api.currentTerm)

	// authed endpoints
	ag := g.Group("", jwt)
	ag.GET("/me", api.profile)
	ag.GET("/me/courses", api.courses)
	ag.GET("/courses/:id", api.course)
	ag.GET("/courses/:id/enrollments", api.enrollments, instructorMiddleware())
	ag.POST("/modules/:id/contents", api.createContent, instructorMiddleware())
}

// Handlers

func (api *portalApi) currentTerm(ctx echo.Context) error {
	now := core.NowFunc()
	return ctx.JSON(http.StatusOK, echo.Map{
		"term":   course.DetermineCurrentTerm(),
		"season": core.Season(now.Month()),
		"year":   now.Year(),
	})
}

func (api *portalApi) profile(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	profile, err := api.svc.StudentProfile(ctx.Request().Context(), sess)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profile)
}

func (api *portalApi) courses(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	var ord Ordering
	if err := ord.Bind(ctx, course.SortableFields); err != nil {
		return err
	}
	dash, err := api.svc.StudentCourses(ctx.Request().Context(), sess, ord.Orderings...)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dash)
}

func (api *portalApi) course(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	crs, err := api.svc.CourseDetail(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *portalApi) enrollments(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	enrs, err := api.svc.CourseEnrollments(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, enrs)
}

func (api *portalApi) createContent(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	var data contenttype.ContentPayload
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ContentPayload")
	}
	item, err := api.svc.CreateContent(ctx.Request().Context(), sess, id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, item)
}

// Helpers

func paramID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errHttpNotFound
	}
	return id, nil
}
