// Package vendorapi is the HTTP client for the remote vendor management
// service. It translates between the wire schema (vendorName, phoneNumber,
// qualityScore, ...) and the local domain.Vendor on every call, in both
// directions. The client is stateless: no retries, no caching.
package vendorapi
