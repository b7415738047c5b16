package pagetext

// LinkParam is the query parameter every adapter reads the target URL from.
const LinkParam = "link"

// MissingLinkMessage is reported when a request carries no link parameter.
const MissingLinkMessage = `Missing "link" query parameter`

// ErrorResponse is the JSON body adapters send on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON body of the standalone server's health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// CORSHeaders returns the headers attached to every adapter response.
func CORSHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin": "*",
	}
}

// PreflightHeaders returns the headers of a 204 response to an OPTIONS
// preflight request.
func PreflightHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET",
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Max-Age":       "3600",
	}
}
