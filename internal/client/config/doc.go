// Package config loads runtime configuration for the siegectl CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with SIEGECTL_.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string     address:port of the siege gRPC endpoint
//	-t duration   per-request timeout
//
// The access token is never taken from flags so it does not end up in shell
// history; use SIEGECTL_ACCESS_TOKEN or the interactive "login" command.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s"
//	}
package config
