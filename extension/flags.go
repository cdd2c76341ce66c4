// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "sync-status" -> FlagSyncStatus).

package extension

// Flag name constants for CLI commands.
const (
	// Output flags shared by list and get

	FlagField  = "field"  // Print a single field
	FlagFields = "fields" // Comma-separated field subset
	FlagFormat = "format" // Output format

	// Boolean flags

	FlagDiff      = "diff"      // Preview export as a diff
	FlagDynamic   = "dynamic"   // Only server-rendered block types
	FlagForce     = "force"     // Delete permanently / overwrite
	FlagInserter  = "inserter"  // Only patterns shown in the inserter
	FlagLocal     = "local"     // Use local scope
	FlagPorcelain = "porcelain" // Print only the new id
	FlagStatic    = "static"    // Only static block types
	FlagStdout    = "stdout"    // Write export to stdout

	// String flags

	FlagArea       = "area"        // Template part area
	FlagBlock      = "block"       // Block name for styles
	FlagCategory   = "category"    // Pattern category
	FlagContent    = "content"     // Inline pattern content
	FlagDir        = "dir"         // Export directory
	FlagFile       = "file"        // Export file
	FlagNamespace  = "namespace"   // Block namespace
	FlagPostType   = "post-type"   // Template post type
	FlagSearch     = "search"      // Free-text search
	FlagSlug       = "slug"        // Template slug list / pattern slug
	FlagSource     = "source"      // Template source
	FlagStatus     = "status"      // Post status
	FlagSyncStatus = "sync-status" // synced, unsynced or all
	FlagTitle      = "title"       // Pattern title
	FlagType       = "type"        // Template type
)
