// Package types defines the MediaItem entity, service configuration, and
// standard errors shared by the mediarack store and API layers.
package types
