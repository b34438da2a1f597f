// Package config loads agdcmeta.yaml, the optional settings file for the
// agdcmeta command line tool. The metadata suffix list is fixed and is not
// part of the configuration.
package config
