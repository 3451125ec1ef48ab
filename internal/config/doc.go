// Package config loads, merges and validates configuration for the
// go-zk-vault client and key blob server.
//
// Sources in priority order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Entry points are [GetClientConfig] and [GetServerConfig].
package config
