// Package client is the siegectl side of the SiegeService transport: a gRPC
// connection that attaches the player's access token to every call and maps
// status codes onto sentinel errors.
//
// # Error Handling
//
// Callers match ErrUnavailable, ErrUnauthorized and ErrRejected with
// errors.Is. A rejected call keeps the server's message.
package client
