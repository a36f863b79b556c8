// Package client connects the directory library to the userdir server.
//
// GRPCClient implements both directory.SessionProvider and directory.Store
// over one gRPC connection. It attaches the access token to every call,
// refreshes it once when the server reports it expired and retries the call,
// and keeps the refresh token in the local session repository so a restart
// can resume the session. Watch streams are reopened after a refresh.
//
// Transport failures surface as ErrUnavailable, rejected tokens as
// ErrUnauthorized, and credential rejections as *directory.CredentialError.
//
// InitDatabase and RunMigrations prepare the local SQLite session store.
package client
