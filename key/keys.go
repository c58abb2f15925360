// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Vault Location - these keys point the engine at the document store root.
const (
	VaultPath = "vault.path"
)

// Theme Resolution - these keys feed the resolver with host state it does not own.
const (
	ThemeMode      = "theme.mode"
	ThemeDefaultID = "theme.default_id"
)

// Synchronization - these keys govern propagation of resolved themes to external sinks.
const (
	SyncOnSwitch = "sync.on_switch"
	SyncReport   = "sync.report"
)

// CSS Export - these keys control the generated variables snippet.
const (
	CSSExportOnSwitch = "css.export_on_switch"
)

// Notifications - these keys control user-facing feedback from engine workflows.
const (
	NotifyEnable = "notify.enable"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
	CliReload  = "cli.reload_command"
)
