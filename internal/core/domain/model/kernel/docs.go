// Package kernel provides shared value objects used across the domain model:
// entity identity (UUID) and the two human-facing reference formats, the
// package tracking reference (PKG-YYYYMMDD-XXXX) and the proof-of-delivery
// reference (POD-YYYY-NNNN).
//
// All types are immutable value objects with Validate methods that reject
// zero values created outside their constructors.
package kernel
