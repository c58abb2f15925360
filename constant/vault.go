package constant

// Vault layout - logical locations of documents and sinks relative to the vault root.
const (
	ThemesDir         = "System/Themes"
	SettingsDocument  = "System/Settings.md"
	OverridePrefix    = "style-settings-"
	OverrideExtension = ".json"
	ThemeExtension    = ".md"
)

// Sink locations written by the synchronization engine.
const (
	AppearancePath      = ".obsidian/appearance.json"
	StyleSettingsPath   = ".obsidian/plugins/obsidian-style-settings/data.json"
	MinimalSettingsPath = ".obsidian/plugins/obsidian-minimal-settings/data.json"
	SnippetPath         = ".obsidian/snippets/prism-theme.css"
)

// ThemeIDField is the frontmatter field identifying a theme document.
const ThemeIDField = "theme-id"
