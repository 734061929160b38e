// Package protocol implements the stdin/stdout/exit-code contract between cck
// hooks and the host assistant.
//
// The host spawns one process per lifecycle event, writes the event payload as
// JSON to stdin and reads the full stdout and stderr once the process exits.
// Only the exit code and the captured streams are observed.
//
// # Exit Codes
//
//   - [ExitOK] (0): allow, context delivered, or nothing to say
//   - [ExitError] (1): non-fatal internal error; the host proceeds without the hook
//   - [ExitBlock] (2): the edit is blocked; reserved for the file-protection hook
//
// # Roles
//
// Hooks declare a [Role]. A [RoleDecision] hook fails with exit 1 on malformed
// input or internal errors. A [RoleAdvisory] hook only contributes optional
// context, so every failure degrades to exit 0 with a warning on stderr.
//
// # Outputs
//
// A [Handler] returns one [Response]:
//
//	protocol.Allow()              // exit 0, no output
//	protocol.Context(text)        // plain text on stdout, exit 0
//	protocol.Warn(message)        // {"systemMessage": message} on stdout, exit 0
//	protocol.Block(explanation)   // explanation on stderr, exit 2
//
// An empty context string suppresses the stdout write entirely.
package protocol
