package config

import "github.com/dmitrijs2005/userdir/internal/flagx"

// Environment variables read by parseEnv. A .env file in the working
// directory is loaded first; variables already exported take precedence.
const (
	EnvGRPCAddr           = "USERDIR_GRPC_ADDR"
	EnvMetricsAddr        = "USERDIR_METRICS_ADDR"
	EnvDatabaseDSN        = "USERDIR_DATABASE_DSN"
	EnvRedisDSN           = "USERDIR_REDIS_DSN"
	EnvSecretKey          = "USERDIR_SECRET_KEY"
	EnvAccessTokenTTL     = "USERDIR_ACCESS_TOKEN_TTL"
	EnvRefreshTokenTTL    = "USERDIR_REFRESH_TOKEN_TTL"
	EnvS3RootUser         = "USERDIR_S3_ROOT_USER"
	EnvS3RootPassword     = "USERDIR_S3_ROOT_PASSWORD"
	EnvS3Bucket           = "USERDIR_S3_BUCKET"
	EnvS3Region           = "USERDIR_S3_REGION"
	EnvS3BaseEndpoint     = "USERDIR_S3_BASE_ENDPOINT"
	EnvOrphanScanInterval = "USERDIR_ORPHAN_SCAN_INTERVAL"
	EnvAuthRateLimit      = "USERDIR_AUTH_RATE_LIMIT"
	EnvAuthRateBurst      = "USERDIR_AUTH_RATE_BURST"
)

func parseEnv(config *Config) {
	flagx.LoadDotEnv()

	flagx.EnvString(EnvGRPCAddr, &config.EndpointAddrGRPC)
	flagx.EnvString(EnvMetricsAddr, &config.MetricsAddr)
	flagx.EnvString(EnvDatabaseDSN, &config.DatabaseDSN)
	flagx.EnvString(EnvRedisDSN, &config.RedisDSN)
	flagx.EnvString(EnvSecretKey, &config.SecretKey)
	flagx.EnvDuration(EnvAccessTokenTTL, &config.AccessTokenValidityDuration)
	flagx.EnvDuration(EnvRefreshTokenTTL, &config.RefreshTokenValidityDuration)
	flagx.EnvString(EnvS3RootUser, &config.S3RootUser)
	flagx.EnvString(EnvS3RootPassword, &config.S3RootPassword)
	flagx.EnvString(EnvS3Bucket, &config.S3Bucket)
	flagx.EnvString(EnvS3Region, &config.S3Region)
	flagx.EnvString(EnvS3BaseEndpoint, &config.S3BaseEndpoint)
	flagx.EnvDuration(EnvOrphanScanInterval, &config.OrphanScanInterval)
	flagx.EnvFloat(EnvAuthRateLimit, &config.AuthRateLimit)
	flagx.EnvInt(EnvAuthRateBurst, &config.AuthRateBurst)
}
