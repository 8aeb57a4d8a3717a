// Package log provides structured, leveled logging for the templa toolchain.
//
// Package: log
// Title: templa Structured Logging
// Description: Leveled logger carrying the component and source being
//              processed, per-parse request IDs, sorted structured fields,
//              four output formats and operation timers.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Component and source context replace correlation IDs;
//                      off level replaces fatal; deterministic output order
//
// Usage:
//   logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//   logger = logger.WithComponent("parser").WithSource("prog.tpl")
//   logger.Debug("parse started", log.Fields{"length": len(src)})
//
//   timer := logger.StartTimer("parse")
//   defer timer.Stop()
//
// Loggers are immutable: every With* method returns a copy, so one logger
// can be shared by concurrent parses. Copies made from the same root
// serialize their writes.
package log
