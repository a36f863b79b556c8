// Package common contains shared constants and sentinel errors used across
// userdir components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// MaxUserNameLength caps the display name chosen at sign-up.
const MaxUserNameLength = 15

// MinPasswordLength is the shortest password the identity service accepts.
const MinPasswordLength = 6
