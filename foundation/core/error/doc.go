// Package error provides structured error handling for the templa toolchain.
//
// Package: error
// Title: templa Error Handling
// Description: Implements a coded error type with severity, details and a cause
//              chain. Parser, engine, configuration and CLI layers report
//              failures through it so callers can branch on codes instead of
//              matching message text.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Trimmed code set to the front end's failure modes
//
// Usage:
//   import mdwerror "github.com/templa-lang/templa/foundation/core/error"
//
//   err := mdwerror.Wrap(parseErr, "parse failed").
//     WithCode(mdwerror.CodeSyntax).
//     WithDetail("line", 3)
//
//   if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
//     // report the diagnostic
//   }
package error
