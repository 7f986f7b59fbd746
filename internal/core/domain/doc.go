// Package domain contains the core business entities for tscribe:
// transcript records, chunks, date ranges, query intent, and answers.
// It has no dependencies on adapters or external services.
package domain
