// Package services implements the driving ports: the retrieval pipeline
// (scoring, context selection, intent classification, prompt assembly),
// question answering, direct search, and the ingestion pipeline.
package services
