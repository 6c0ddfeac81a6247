// Package services holds the application services that orchestrate the
// domain rules, the local store and the remote vendor API.
package services
