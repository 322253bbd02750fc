package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vaultsiege/internal/flagx"
	"github.com/dmitrijs2005/vaultsiege/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// strings such as "4h" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC  string         `json:"endpoint_addr_grpc"`
	DatabaseDSN       string         `json:"database_dsn"`
	SecretKey         string         `json:"secret_key"`
	DayTimezone       string         `json:"day_timezone"`
	DayStartHour      *int           `json:"day_start_hour"`
	MaxMovesPerDay    int64          `json:"max_moves_per_day"`
	CooldownDuration  timex.Duration `json:"cooldown_duration"`
	CurrencySyncDelay timex.Duration `json:"currency_sync_delay"`
	MasteryBaseCost   int64          `json:"mastery_base_cost"`
	RedisAddr         string         `json:"redis_addr"`
	RedisChannel      string         `json:"redis_channel"`
	S3RootUser        string         `json:"s3_root_user"`
	S3RootPassword    string         `json:"s3_root_password"`
	S3Bucket          string         `json:"s3_bucket"`
	S3Region          string         `json:"s3_region"`
	S3BaseEndpoint    string         `json:"s3_base_endpoint"`
	OTLPEndpoint      string         `json:"otlp_endpoint"`
}

// parseJson overlays values from the file named by -c/-config. Keys absent
// from the file keep their current value. A missing or malformed file
// panics: the server must not start on a half-read configuration.
func parseJson(config *Config) {
	path := flagx.ConfigFilePath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.DayTimezone, c.DayTimezone)
	if c.DayStartHour != nil {
		config.DayStartHour = *c.DayStartHour
	}
	if c.MaxMovesPerDay > 0 {
		config.MaxMovesPerDay = c.MaxMovesPerDay
	}
	if c.CooldownDuration.Duration > 0 {
		config.CooldownDuration = c.CooldownDuration.Duration
	}
	if c.CurrencySyncDelay.Duration > 0 {
		config.CurrencySyncDelay = c.CurrencySyncDelay.Duration
	}
	if c.MasteryBaseCost > 0 {
		config.MasteryBaseCost = c.MasteryBaseCost
	}
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisChannel, c.RedisChannel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.OTLPEndpoint, c.OTLPEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
