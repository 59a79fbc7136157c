package xds

// Registry response status and error constants from the XDS.b profile.
const (
	StatusSuccess = "urn:oasis:names:tc:ebxml-regrep:ResponseStatusType:Success"
	StatusFailure = "urn:oasis:names:tc:ebxml-regrep:ResponseStatusType:Failure"

	SeverityError = "urn:oasis:names:tc:ebxml-regrep:ErrorSeverityType:Error"

	ErrorCodeRepositoryError = "XDSRepositoryError"
)

// RegistryError is one error entry in a failure response.
type RegistryError struct {
	ErrorCode   string `json:"errorCode"`
	CodeContext string `json:"codeContext"`
	Severity    string `json:"severity"`
}

// RegistryErrorList aggregates errors with the highest severity observed.
type RegistryErrorList struct {
	HighestSeverity string          `json:"highestSeverity"`
	Errors          []RegistryError `json:"errors"`
}

// RegistryResponse is the standards-shaped verdict returned for a
// Provide and Register Document Set transaction.
type RegistryResponse struct {
	Status    string             `json:"status"`
	ErrorList *RegistryErrorList `json:"errorList,omitempty"`
}

// SuccessResponse builds a success registry response.
func SuccessResponse() *RegistryResponse {
	return &RegistryResponse{Status: StatusSuccess}
}

// FailureResponse builds a failure registry response carrying exactly one
// aggregate error entry with the failing error's message as code context.
func FailureResponse(err error) *RegistryResponse {
	return &RegistryResponse{
		Status: StatusFailure,
		ErrorList: &RegistryErrorList{
			HighestSeverity: SeverityError,
			Errors: []RegistryError{{
				ErrorCode:   ErrorCodeRepositoryError,
				CodeContext: err.Error(),
				Severity:    SeverityError,
			}},
		},
	}
}

// Succeeded reports whether the response carries the success status.
func (r *RegistryResponse) Succeeded() bool {
	return r.Status == StatusSuccess
}
