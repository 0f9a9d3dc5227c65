package model

// Roles carried in the "role" claim of access tokens.  OWNER manages the
// catalogue and registers customers, CUSTOMER books regular seats and VIP
// additionally books private screenings.
const (
    RoleOwner    = "OWNER"
    RoleCustomer = "CUSTOMER"
    RoleVIP      = "VIP"
)
