// Package config loads snippet definitions from configuration files.
//
// A configuration file declares template marker overrides and a list of
// snippet registrations (mode, trigger, condition, template). YAML and
// TOML formats are supported, selected by file extension. Conditions are
// written in a small closed vocabulary ("always", "at-line-start",
// "trigger-is:word", negation, and single-operator && / || expressions)
// that maps onto dispatch conditions.
//
// The Watcher reloads a configuration file when it changes on disk, so
// snippet definitions can be edited without restarting the host.
package config
