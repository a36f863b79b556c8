// Package cli provides the interactive userdir admin console.
//
// It binds a directory.Session to a line-oriented REPL: sign up, sign in,
// list the directory, select profiles and block or unblock them in bulk.
// A background watcher pings the server and flips the console between
// online and offline mode.
//
// Commands offered depend on the composed view:
//   - anonymous: signup, signin (plus whoami, signout while a session
//     exists whose profile is not in the directory yet)
//   - blocked: signin, signup, whoami, signout
//   - active: list, select, selectall, block, unblock, whoami, signout, delete
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
