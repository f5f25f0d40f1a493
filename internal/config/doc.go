// Package config holds the configuration of the keygen command and builds its
// logger.
package config
