// Package common contains shared constants and sentinel errors used across
// vaultsiege components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// player's access token on inbound siege requests.
const AccessTokenHeaderName = "access_token"
