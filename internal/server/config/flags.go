package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/vaultsiege/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-d string     PostgreSQL DSN
//	-s string     JWT HMAC secret key
//	-z string     game-day timezone
//	-m int        daily move limit
//	-k duration   vault cooldown (e.g., "4h")
//	-r string     Redis address
//	-u string     S3 root user
//	-p string     S3 root password
//	-b string     S3 bucket name
//	-g string     S3 region
//	-e string     S3 base endpoint
//	-o string     OTLP trace endpoint
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-z", "-m", "-k", "-r", "-u", "-p", "-b", "-g", "-e", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.DayTimezone, "z", config.DayTimezone, "game-day timezone")
	fs.Int64Var(&config.MaxMovesPerDay, "m", config.MaxMovesPerDay, "daily move limit")
	fs.DurationVar(&config.CooldownDuration, "k", config.CooldownDuration, "vault cooldown duration")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address for notifications")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 archive bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.OTLPEndpoint, "o", config.OTLPEndpoint, "OTLP trace endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
