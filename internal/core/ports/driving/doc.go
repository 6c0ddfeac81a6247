// Package driving defines the primary ports: the application services the
// CLI (and any future surface) calls into.
package driving
