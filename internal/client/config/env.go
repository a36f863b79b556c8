package config

import "github.com/dmitrijs2005/userdir/internal/flagx"

const (
	EnvServerAddr          = "USERDIR_SERVER_ADDR"
	EnvOnlineCheckInterval = "USERDIR_ONLINE_CHECK_INTERVAL"
	EnvSessionDB           = "USERDIR_SESSION_DB"
)

func parseEnv(cfg *Config) {
	flagx.LoadDotEnv()

	flagx.EnvString(EnvServerAddr, &cfg.ServerEndpointAddr)
	flagx.EnvDuration(EnvOnlineCheckInterval, &cfg.OnlineCheckInterval)
	flagx.EnvString(EnvSessionDB, &cfg.SessionDBPath)
}
