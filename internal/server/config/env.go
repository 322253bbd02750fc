package config

import "github.com/caarlos0/env/v11"

// EnvPrefix namespaces every environment variable, e.g. VAULTSIEGE_GRPC_ADDR.
const EnvPrefix = "VAULTSIEGE_"

// parseEnv overlays variables that are set; unset ones leave the field alone.
func parseEnv(config *Config) {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
