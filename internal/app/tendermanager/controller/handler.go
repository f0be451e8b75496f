package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"tenders/internal/app/tendermanager/service"
	"tenders/internal/common/dto"
	"tenders/pkg/utils"
)

type Handler struct {
	TenderService service.ITenderService
	BidService    service.IBidService
}

func NewTenderManagerHandler(tenders service.ITenderService, bids service.IBidService) *Handler {
	return &Handler{TenderService: tenders, BidService: bids}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/ping", h.Ping)

	api.GET("/tenders", h.ListTenders)
	api.POST("/tenders/new", h.CreateTender)
	api.GET("/tenders/my", h.ListUserTenders)
	api.GET("/tenders/:id/status", h.GetTenderStatus)
	api.PUT("/tenders/:id/status", h.UpdateTenderStatus)
	api.PATCH("/tenders/:id/edit", h.EditTender)
	api.PUT("/tenders/:id/rollback/:version", h.RollbackTender)

	// :id is a tender id for list/reviews and a bid id everywhere else.
	api.POST("/bids/new", h.CreateBid)
	api.GET("/bids/my", h.ListUserBids)
	api.GET("/bids/:id/list", h.ListTenderBids)
	api.GET("/bids/:id/status", h.GetBidStatus)
	api.PUT("/bids/:id/status", h.UpdateBidStatus)
	api.PATCH("/bids/:id/edit", h.EditBid)
	api.PUT("/bids/:id/rollback/:version", h.RollbackBid)
	api.PUT("/bids/:id/submit_decision", h.SubmitDecision)
	api.PUT("/bids/:id/feedback", h.SubmitFeedback)
	api.GET("/bids/:id/reviews", h.ListReviews)
}

func (h *Handler) Ping(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// RequestValidator adapts validator/v10 to echo.Validator.
type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validator: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidInput, err.Error())
	}
	return nil
}

// ErrorHandler renders every failure as {"reason": ...}. Unknown errors are
// logged and hidden behind a generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code, reason := statusOf(err)
	if code == http.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("request failed")
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, dto.ErrorResponse{Reason: reason})
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to write error response")
	}
}

func statusOf(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusUnauthorized, service.ErrUserNotFound.Error()
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, service.ErrForbidden.Error()
	case errors.Is(err, service.ErrTenderNotFound):
		return http.StatusNotFound, service.ErrTenderNotFound.Error()
	case errors.Is(err, service.ErrBidNotFound):
		return http.StatusNotFound, service.ErrBidNotFound.Error()
	case errors.Is(err, service.ErrVersionNotFound):
		return http.StatusNotFound, service.ErrVersionNotFound.Error()
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, service.ErrConflict.Error()
	case errors.As(err, &he):
		if he.Code >= http.StatusInternalServerError {
			return he.Code, http.StatusText(he.Code)
		}
		return he.Code, fmt.Sprint(he.Message)
	}
	return http.StatusInternalServerError, "internal server error"
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", service.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, invalid("invalid id %q", c.Param("id"))
	}
	return id, nil
}

func pathVersion(c echo.Context) (int, error) {
	version, err := utils.ParseVersion(c.Param("version"))
	if err != nil {
		return 0, invalid("%s", err)
	}
	return version, nil
}

func page(c echo.Context) (int, int, error) {
	limit, offset, err := utils.ParsePage(c.QueryParam("limit"), c.QueryParam("offset"))
	if err != nil {
		return 0, 0, invalid("%s", err)
	}
	return limit, offset, nil
}

// bindBody binds and validates a JSON request body.
func bindBody(c echo.Context, dst interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return invalid("%v", he.Message)
		}
		return invalid("%s", err)
	}
	return c.Validate(dst)
}
