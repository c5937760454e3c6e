// Package domain contains shared domain types used across entity sub-packages.
// The todo entity and its recurrence rules live in domain/todo. This root
// package holds the sentinel errors and error types that every layer
// classifies failures with.
package domain
