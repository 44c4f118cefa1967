// Package cli provides the TaskKeeper command-line client.
//
// A single command can be run directly (taskcli add Buy milk) or, with no
// command given, an interactive REPL is started. The session obtained by
// register or login is stored in the configured token file so later runs
// stay logged in until the token expires.
//
// Commands:
//   - register / login / logout
//   - list
//   - add [title...]
//   - done <id> / undone <id>
//   - rm <id>
package cli
