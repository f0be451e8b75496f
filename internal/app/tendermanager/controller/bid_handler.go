package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tenders/internal/common/dto"
	"tenders/internal/domain/entity"
)

func (h *Handler) CreateBid(c echo.Context) error {
	var req dto.CreateBidRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	bid, err := h.BidService.CreateBid(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewBidResponse(bid))
}

func (h *Handler) ListUserBids(c echo.Context) error {
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	bids, err := h.BidService.ListUserBids(c.Request().Context(), c.QueryParam("username"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewBidResponses(bids))
}

func (h *Handler) ListTenderBids(c echo.Context) error {
	tenderID, err := pathID(c)
	if err != nil {
		return err
	}
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	bids, err := h.BidService.ListTenderBids(c.Request().Context(), tenderID, c.QueryParam("username"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewBidResponses(bids))
}

func (h *Handler) GetBidStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	status, err := h.BidService.GetBidStatus(c.Request().Context(), id, c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.BidStatusResponse{Status: status})
}

func (h *Handler) UpdateBidStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	status := entity.BidStatus(c.QueryParam("status"))
	if !status.Valid() {
		return invalid("unknown bid status %q", status)
	}
	bid, err := h.BidService.UpdateBidStatus(c.Request().Context(), id, status, c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewBidResponse(bid))
}

func (h *Handler) EditBid(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.EditBidRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	bid, err := h.BidService.EditBid(c.Request().Context(), id, c.QueryParam("username"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewBidResponse(bid))
}

func (h *Handler) RollbackBid(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	version, err := pathVersion(c)
	if err != nil {
		return err
	}
	bid, err := h.BidService.RollbackBid(c.Request().Context(), id, version, c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewBidResponse(bid))
}

func (h *Handler) SubmitDecision(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	decision := entity.Decision(c.QueryParam("decision"))
	if !decision.Valid() {
		return invalid("unknown decision %q", decision)
	}
	bid, err := h.BidService.SubmitDecision(c.Request().Context(), id, decision, c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewBidResponse(bid))
}

func (h *Handler) SubmitFeedback(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	bid, err := h.BidService.SubmitFeedback(c.Request().Context(), id, c.QueryParam("bidFeedback"), c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewBidResponse(bid))
}

func (h *Handler) ListReviews(c echo.Context) error {
	tenderID, err := pathID(c)
	if err != nil {
		return err
	}
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	reviews, err := h.BidService.ListReviews(c.Request().Context(), tenderID,
		c.QueryParam("authorUsername"), c.QueryParam("requesterUsername"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewBidFeedbackResponses(reviews))
}
