package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
)

type createCustomerReq struct {
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
    VIP       bool   `json:"vip"`
}

// CreateCustomer handles POST /v1/customers.  The owner is the only one who
// can create VIP customers; the response carries a token for the new
// customer so the box office can hand it over.
func (h *AuthHandler) CreateCustomer(c echo.Context) error {
    var body createCustomerReq
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    first, last := strings.TrimSpace(body.FirstName), strings.TrimSpace(body.LastName)
    if first == "" || last == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name/last_name required"})
    }
    customer := h.Svc.RegisterCustomer(first, last, body.VIP)
    return h.issueCustomer(c, http.StatusCreated, customer)
}

// ListCustomers handles GET /v1/customers and returns every customer with
// their reservations, in registration order.
func (h *OwnerHandler) ListCustomers(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"items": h.Svc.ListCustomers()})
}
