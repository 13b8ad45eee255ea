package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/palette/auction-gateway/internal/api/metrics"
	"github.com/palette/auction-gateway/internal/core/domain"
	"github.com/palette/auction-gateway/internal/core/ports"
)

// BidHandler serves the customer's bid history and the pay flow for
// winning bids.
type BidHandler struct {
	service ports.BidService
}

func NewBidHandler(service ports.BidService) *BidHandler {
	return &BidHandler{service: service}
}

type payBidRequest struct {
	Method string `json:"method" validate:"required,oneof=card gcash paypal bank_transfer"`
}

type paymentDetailsResponse struct {
	TransactionID string     `json:"transaction_id"`
	Method        string     `json:"method"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	FailureReason string     `json:"failure_reason,omitempty"`
}

type bidResponse struct {
	ID            string                  `json:"id"`
	AuctionID     string                  `json:"auction_id"`
	ItemTitle     string                  `json:"item_title"`
	ItemImage     string                  `json:"item_image,omitempty"`
	Amount        float64                 `json:"amount"`
	PlacedAt      time.Time               `json:"placed_at"`
	PaymentStatus string                  `json:"payment_status"`
	DueDate       *time.Time              `json:"due_date,omitempty"`
	Payment       *paymentDetailsResponse `json:"payment,omitempty"`
}

type listBidsResponse struct {
	Data []bidResponse `json:"data"`
}

func toBidResponse(bid domain.Bid) bidResponse {
	resp := bidResponse{
		ID:            bid.ID,
		AuctionID:     bid.AuctionID,
		ItemTitle:     bid.ItemTitle,
		ItemImage:     bid.ItemImage,
		Amount:        bid.Amount,
		PlacedAt:      bid.PlacedAt,
		PaymentStatus: string(bid.PaymentStatus),
		DueDate:       bid.DueDate,
	}
	if bid.Payment != nil {
		resp.Payment = &paymentDetailsResponse{
			TransactionID: bid.Payment.TransactionID,
			Method:        bid.Payment.Method,
			FailureReason: bid.Payment.FailureReason,
		}
		if !bid.Payment.PaidAt.IsZero() {
			paidAt := bid.Payment.PaidAt
			resp.Payment.PaidAt = &paidAt
		}
	}
	return resp
}

// List returns the caller's bids, most recent first.
//
// @Summary      List my bids
// @Tags         bids
// @Produce      json
// @Success      200  {object}  listBidsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/bids [get]
func (h *BidHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bids, err := h.service.ListBids(c.Request().Context(), identity.Username)
	if err != nil {
		return err
	}

	data := make([]bidResponse, 0, len(bids))
	for _, bid := range bids {
		data = append(data, toBidResponse(bid))
	}
	return c.JSON(http.StatusOK, listBidsResponse{Data: data})
}

// Pay settles an unpaid winning bid.
//
// @Summary      Pay for a winning bid
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Bid ID"
// @Param        body  body      payBidRequest  true  "Payment method"
// @Success      200   {object}  bidResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/bids/{id}/pay [post]
func (h *BidHandler) Pay(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req payBidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bid, err := h.service.PayBid(c.Request().Context(), ports.PayBidInput{
		BidID:  c.Param("id"),
		Bidder: identity.Username,
		Method: req.Method,
	})
	if err != nil {
		metrics.PaymentsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.PaymentsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toBidResponse(*bid))
}
