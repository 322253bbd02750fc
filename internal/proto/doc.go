// Package proto holds the generated SiegeService messages and gRPC stubs.
package proto

//go:generate sh -c "cd ../.. && buf generate"
