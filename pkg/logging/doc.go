// Package logging provides subsystem-tagged structured logging for oauthrest,
// built on log/slog.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Config", "Loaded configuration from %s", path)
//	logging.Debug("CLI", "Requesting %s", path)
//	logging.Error("CLI", err, "Token exchange failed")
//
// Components that take a *slog.Logger, such as client.Client, get one
// carrying the subsystem attribute from For:
//
//	c := client.New(cfg, client.WithLogger(logging.For("Client")))
//
// Every entry carries a "subsystem" attribute. Errors passed to Error are
// added under "error". Messages below the configured level are dropped
// before formatting.
package logging
