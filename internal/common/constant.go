package common

// AuthorizationHeaderName is the HTTP header used to carry the access token
// on requests to protected endpoints.
const AuthorizationHeaderName = "Authorization"

// BearerSchema is the authorization scheme expected in front of the token,
// as in "Authorization: Bearer <token>".
const BearerSchema = "Bearer"
