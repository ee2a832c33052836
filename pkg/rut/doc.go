// Package rut validates, formats, generates and analyses Chilean national
// identification numbers (RUN/RUT).
//
// An identifier is a numeric body followed by a single check character, a
// decimal digit or the letter k. Two textual forms are supported:
//
//	canonical: 123456785
//	display:   12.345.678-5
//
// Every function in this package is pure and safe for concurrent use. Input
// handling is deliberately permissive: malformed identifiers fail validation
// or produce non-matching values instead of panicking, and characters other
// than the separators pass through normalization untouched.
//
// Usage:
//
//	rut.Validate("12.345.678-5")       // true
//	rut.Format("123456785", false)     // "12.345.678-5"
//	rut.Unformat("12.345.678-5", true) // "00123456785"
//	rut.Generate(3, rut.DefaultRange)  // three random display-form identifiers
package rut
