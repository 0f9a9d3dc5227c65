package handler

import (
	"math"
	"net/http" // HTTP status codes
	"strconv"  // parsing the price query parameter
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/cinema-booking/internal/service"
)

// CustomerHandler serves the reservation routes of an authenticated
// customer.  All methods assume that JWT authentication and role validation
// have already been performed by middleware.  Methods return 401 when the
// token subject is not a customer ID.
type CustomerHandler struct {
	Svc *service.BookingService
}

// NewCustomerHandler panics when svc is nil.
func NewCustomerHandler(svc *service.BookingService) *CustomerHandler {
	if svc == nil {
		panic("nil service passed to NewCustomerHandler")
	}
	return &CustomerHandler{Svc: svc}
}

type reserveReq struct {
	MovieID     string `json:"movie_id"`
	Time        string `json:"time"`
	VIPDiscount bool   `json:"vip_discount"`
}

type privateShowReq struct {
	MovieID string `json:"movie_id"`
	Time    string `json:"time"`
}

// Reserve handles POST /v1/reservations.  The movie must be screened at the
// requested time.  vip_discount is only accepted from VIP customers.
func (h *CustomerHandler) Reserve(c echo.Context) error {
	customerID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req reserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie_id"})
	}
	r, err := h.Svc.Reserve(c.Request().Context(), customerID, movieID, strings.TrimSpace(req.Time), req.VIPDiscount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

// BookPrivateShow handles POST /v1/private-shows.  Only reachable with a VIP
// token; the reservation is recorded as private with the VIP discount.
func (h *CustomerHandler) BookPrivateShow(c echo.Context) error {
	customerID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req privateShowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie_id"})
	}
	r, err := h.Svc.BookPrivateShow(c.Request().Context(), customerID, movieID, strings.TrimSpace(req.Time))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

// ListReservations handles GET /v1/my-reservations.  Reservations are
// returned in the order they were made; an empty list is [] not null.
func (h *CustomerHandler) ListReservations(c echo.Context) error {
	customerID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	customer, err := h.Svc.GetCustomer(customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": customer.Reservations})
}

// QuotePrice handles GET /v1/price-quote?price=.  VIP customers get the
// discounted price; everyone else pays the listed price.
func (h *CustomerHandler) QuotePrice(c echo.Context) error {
	customerID, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	price, err := strconv.ParseFloat(c.QueryParam("price"), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be a finite non-negative number"})
	}
	quoted, discounted, err := h.Svc.QuotePrice(customerID, price)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"listed_price": price,
		"price":        quoted,
		"vip_discount": discounted,
	})
}
