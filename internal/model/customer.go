package model

import "github.com/google/uuid"

// CustomerSummary is the sanitized view of a registered customer together
// with the reservations recorded so far.
//
// Fields:
//  ID           – identifier assigned when the customer was created.
//  FirstName    – given name.
//  LastName     – family name.
//  VIP          – whether the customer has the VIP capabilities.
//  Reservations – reservation records in insertion order.
type CustomerSummary struct {
    ID           uuid.UUID     `json:"id"`
    FirstName    string        `json:"first_name"`
    LastName     string        `json:"last_name"`
    VIP          bool          `json:"vip"`
    Reservations []Reservation `json:"reservations"`
}
