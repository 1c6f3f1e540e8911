// Package output provides structured output handling for the portage CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for human users and for automated agents
// driving the CLI.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches
// format based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Wrote .windsurf/rules/deploy.md"})
//	printer.Error(err)
//	printer.KeyValue("Platform", "windsurf")
//
// # Exit Codes
//
// The package defines the CLI's exit codes and typed errors that carry them:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitFailure     // 1: Failure (including --strict escalation)
//	output.ExitUsage       // 2: Usage error (bad args, unknown platform)
//	output.ExitEnvironment // 3: Environment error (I/O problems)
//
// Use the constructors to create properly-coded errors:
//
//	output.NewUsageError("unknown platform \"cursor\"")
//	output.NewEnvErrorWithCause("failed to read template", err)
//
// These errors drive both JSON error output and the process exit code.
package output
