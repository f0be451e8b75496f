package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tenders/internal/common/dto"
	"tenders/internal/domain/entity"
	"tenders/internal/repository"
)

func (h *Handler) ListTenders(c echo.Context) error {
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	filter := repository.TenderFilter{Limit: limit, Offset: offset}
	for _, t := range c.QueryParams()["service_type"] {
		filter.ServiceTypes = append(filter.ServiceTypes, entity.ServiceType(t))
	}

	tenders, err := h.TenderService.ListTenders(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewTenderResponses(tenders))
}

func (h *Handler) CreateTender(c echo.Context) error {
	var req dto.CreateTenderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	tender, err := h.TenderService.CreateTender(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewTenderResponse(tender))
}

func (h *Handler) ListUserTenders(c echo.Context) error {
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	tenders, err := h.TenderService.ListUserTenders(c.Request().Context(), c.QueryParam("username"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewTenderResponses(tenders))
}

func (h *Handler) GetTenderStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	status, err := h.TenderService.GetTenderStatus(c.Request().Context(), id, c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.TenderStatusResponse{Status: status})
}

func (h *Handler) UpdateTenderStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	status := entity.TenderStatus(c.QueryParam("status"))
	if !status.Valid() {
		return invalid("unknown tender status %q", status)
	}
	tender, err := h.TenderService.UpdateTenderStatus(c.Request().Context(), id, status, c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.TenderStatusResponse{Status: tender.Status})
}

func (h *Handler) EditTender(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.EditTenderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	tender, err := h.TenderService.EditTender(c.Request().Context(), id, c.QueryParam("username"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewTenderResponse(tender))
}

func (h *Handler) RollbackTender(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	version, err := pathVersion(c)
	if err != nil {
		return err
	}
	tender, err := h.TenderService.RollbackTender(c.Request().Context(), id, version, c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewTenderResponse(tender))
}
