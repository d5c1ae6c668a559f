// Package errors provides the coded error type shared by fieldmatch packages.
//
// Codes are stable strings so tests and callers can branch on the failure
// category (IsErrorCode, GetErrorCode) without matching on messages.
package errors
