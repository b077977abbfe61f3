// Package httpapi maps the mediarack HTTP routes onto store operations,
// validates request bodies, and serves the OpenAPI document generated from
// the same schema used for validation.
package httpapi
