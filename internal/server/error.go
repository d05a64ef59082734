package server

import "lsbsteg/api"

var (
	errRequestBodyDecode = api.Error{Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errInvalidLSBs       = api.Error{Code: "invalid_lsbs", Error: "LSBs to use must be between 1 and 8"}
	errInvalidDimensions = api.Error{Code: "invalid_dimensions", Error: "Image dimensions must be positive"}
	errCapacityExceeded  = api.Error{Code: "capacity_exceeded", Error: "Payload plus size header exceed image capacity"}
	errHide              = api.Error{Code: "hide_error", Error: "An error occurred while hiding the payload in the image"}
	errRecover           = api.Error{Code: "recover_error", Error: "Error while recovering the payload from the image"}
)
