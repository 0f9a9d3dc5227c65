package service

import "errors"

// Lookup and capability failures of the booking service.  Handlers map them
// to 404 and 403 responses.
var (
    ErrMovieNotFound    = errors.New("movie not found")
    ErrCustomerNotFound = errors.New("customer not found")
    ErrNotVIP           = errors.New("customer is not a VIP")
)
