// Package server runs the key blob server's HTTP listener until a stop
// signal arrives, then shuts it down gracefully.
package server
