// Package domain contains the core business entities for the QMS record
// lifecycle: controlled documents, vendors and their acceptance evaluations,
// plus the pure validation and scoring rules that operate on them.
//
// Everything in this package is free of I/O. Stores and the remote vendor
// API are defined as ports and implemented by adapters.
package domain
