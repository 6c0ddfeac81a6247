// Package driven defines the secondary ports: interfaces the core depends
// on and adapters implement (local storage, the remote vendor API,
// configuration).
package driven
