// Package processor contains the CLI processing logic for aistriu. It
// builds the configured translation provider, translates single texts or
// batch files, and optionally records translations into the feedback log.
// This package serves as the coordinator between the cli, translation and
// feedback components.
package processor
