// Package config loads runtime configuration for the userdir CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: USERDIR_SERVER_ADDR, USERDIR_ONLINE_CHECK_INTERVAL,
//     USERDIR_SESSION_DB, also read from a .env file.
//  4. Flags -a, -i (seconds) and -s.
//
// JSON example:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "session_db_path": "userdir-session.db"
//	}
package config
