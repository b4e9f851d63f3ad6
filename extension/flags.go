// flags.go defines constants for CLI flag names shared between extensions.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagDiff   = "diff"    // Show diff output
	FlagDryRun = "dry-run" // Preview without making changes
	FlagJSON   = "json"    // JSON output (read only)
	FlagLocal  = "local"   // Use local scope

	// Integer flags

	FlagLimit = "limit" // Limit number of results

	// String flags

	FlagSince = "since" // Look-back window for log
)
