// Package config loads runtime configuration for the TaskKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-f string   session file path
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds. Absent keys keep their previous value:
//
//	{
//	  "server_url": "http://127.0.0.1:8000",
//	  "token_file": "/home/alice/.config/taskkeeper/session.json",
//	  "request_timeout": "10s"
//	}
package config
