package handler

import (
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/sirupsen/logrus"

    "github.com/iliyamo/cinema-booking/internal/model"
    "github.com/iliyamo/cinema-booking/internal/service"
    "github.com/iliyamo/cinema-booking/internal/utils"
)

// OwnerSubject is the token subject of the box office owner.
const OwnerSubject = "owner"

// AuthHandler issues access tokens to the owner and to customers.
type AuthHandler struct {
    JWTSecret    string
    AccessTTLMin int
    OwnerHash    string // bcrypt hash of the owner password
    Svc          *service.BookingService
}

func NewAuthHandler(secret string, ttlMin int, ownerHash string, svc *service.BookingService) *AuthHandler {
    return &AuthHandler{JWTSecret: secret, AccessTTLMin: ttlMin, OwnerHash: ownerHash, Svc: svc}
}

// ----- DTOs -----

type ownerLoginReq struct {
    Password string `json:"password"`
}

type registerReq struct {
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
}

type tokenPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}

type customerAuthResp struct {
    Customer model.CustomerSummary `json:"customer"`
    Access   tokenPart             `json:"access"`
}

// OwnerLogin handles POST /v1/auth/owner.  A correct password yields an
// OWNER access token; anything else is 401.
func (h *AuthHandler) OwnerLogin(c echo.Context) error {
    var req ownerLoginReq
    if err := c.Bind(&req); err != nil || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "password required"})
    }
    if !utils.VerifyPassword(h.OwnerHash, req.Password) {
        logrus.WithField("ip", c.RealIP()).Warn("owner login failed")
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }
    access, err := utils.NewAccessToken(h.JWTSecret, OwnerSubject, model.RoleOwner, h.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "access": tokenPart{Token: access.Token, Expires: access.Exp},
    })
}

// Register handles POST /v1/auth/register.  It creates a standard customer
// and returns it together with a CUSTOMER access token.  VIP customers are
// only created by the owner.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    first, last := strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName)
    if first == "" || last == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name/last_name required"})
    }
    customer := h.Svc.RegisterCustomer(first, last, false)
    return h.issueCustomer(c, http.StatusCreated, customer)
}

// issueCustomer writes the customer together with a token for its role.
func (h *AuthHandler) issueCustomer(c echo.Context, status int, customer model.CustomerSummary) error {
    role := model.RoleCustomer
    if customer.VIP {
        role = model.RoleVIP
    }
    access, err := utils.NewAccessToken(h.JWTSecret, customer.ID.String(), role, h.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
    }
    return c.JSON(status, customerAuthResp{
        Customer: customer,
        Access:   tokenPart{Token: access.Token, Expires: access.Exp},
    })
}
