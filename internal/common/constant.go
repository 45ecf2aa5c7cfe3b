// Package common contains shared constants and sentinel errors used across
// Yes-Chef client components.
package common

// CSRFHeaderName is the HTTP header carrying the anti-forgery token on
// outbound mutating requests and, when the API rotates the token, on
// inbound responses.
const CSRFHeaderName = "X-CSRFToken"

// CSRFCookieName is the cookie the API uses as the token transport.
const CSRFCookieName = "csrftoken"

// RequestIDHeaderName carries a client-generated id for log correlation.
const RequestIDHeaderName = "X-Request-ID"
