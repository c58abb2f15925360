package theme

// defaults is the root of every merge. Slots that the original catalog leaves
// to derivation (glow, charts, heatmap) are deliberately missing here.
var defaults = Bag{
	"theme-id":          "default",
	"theme-name":        "Default",
	"theme-description": "Fallback theme",

	"color-background":    "#1e1e2e",
	"color-surface":       "#2a2a3e",
	"color-surface-hover": "#363650",

	"color-border":           "rgba(255,255,255,0.1)",
	"color-border-highlight": "rgba(255,255,255,0.2)",
	"color-border-active":    "#7c3aed",

	"color-accent":         "#7c3aed",
	"color-accent-hover":   "#8b5cf6",
	"color-accent-active":  "#6d28d9",
	"color-text-on-accent": "#ffffff",

	"color-text":         "#ffffff",
	"color-text-muted":   "#a0a0b0",
	"color-text-faint":   "#6b6b7b",
	"color-selection-bg": "rgba(124,58,237,0.3)",
	"color-highlight-bg": "rgba(245,158,11,0.35)",

	"color-red":    "#ef4444",
	"color-orange": "#f59e0b",
	"color-yellow": "#eab308",
	"color-green":  "#10b981",
	"color-cyan":   "#06b6d4",
	"color-blue":   "#3b82f6",
	"color-purple": "#8b5cf6",
	"color-pink":   "#ec4899",

	"color-success": "#10b981",
	"color-warning": "#f59e0b",
	"color-error":   "#ef4444",

	"color-heading-1": "#7c3aed",
	"color-heading-2": "#8b5cf6",
	"color-heading-3": "#a78bfa",
	"color-heading-4": "#c4b5fd",
	"color-heading-5": "#ddd6fe",
	"color-heading-6": "#ede9fe",

	"color-icon":        "#7c3aed",
	"color-icon-hover":  "#a78bfa",
	"color-icon-active": "#8b5cf6",

	"color-link":                "#7c3aed",
	"color-link-hover":          "#a78bfa",
	"color-link-external":       "#3b82f6",
	"color-link-external-hover": "#60a5fa",

	"color-graph-node":        "#7c3aed",
	"color-graph-node-active": "#f59e0b",
	"color-graph-node-tag":    "#10b981",

	"color-divider":     "#7c3aed",
	"color-line-number": "#6b6b7b",
	"color-gutter":      "rgba(124,58,237,0.1)",
	"color-active-line": "rgba(124,58,237,0.1)",
	"color-tab":         "#a0a0b0",
	"color-tab-active":  "#ffffff",

	"glow-enabled":   true,
	"glow-intensity": "15px",
	"glow-spread":    "2px",

	"transition-duration": "0.3s",
	"transition-easing":   "ease",

	"border-width-default": "1px",
	"border-width-active":  "2px",
	"border-radius-small":  "6px",
	"border-radius-medium": "12px",
	"border-radius-large":  "16px",
	"border-radius-pill":   "9999px",

	"font-mono": "Fira Code, monospace",

	"bar-sprite-width":  34,
	"bar-sprite-height": 21,
	"bar-fill-gradient": "linear-gradient(90deg, #7c3aed, #a78bfa)",
	"bar-border-radius": "6px",
	"bar-height":        "14px",

	"toggle-sprite-width":  50,
	"toggle-sprite-height": 40,

	"label-active":       "Active",
	"label-inactive":     "Inactive",
	"label-active-sub":   "Enabled",
	"label-inactive-sub": "Disabled",

	"button-idle-bg":       "#7c3aed",
	"button-hover-bg":      "#8b5cf6",
	"button-active-bg":     "#6d28d9",
	"button-text-color":    "#ffffff",
	"button-border-radius": "8px",
	"button-padding":       "10px 20px",

	"card-bg-color":      "#2a2a3e",
	"card-border":        "1px solid rgba(255,255,255,0.1)",
	"card-border-radius": "12px",
	"card-shadow":        "0 4px 15px rgba(0,0,0,0.2)",
	"card-padding":       "16px",

	"input-bg":            "rgba(255,255,255,0.05)",
	"input-border":        "1px solid rgba(255,255,255,0.2)",
	"input-border-focus":  "1px solid #7c3aed",
	"input-border-radius": "6px",
	"input-text-color":    "#ffffff",

	"chip-bg":            "rgba(255,255,255,0.05)",
	"chip-bg-active":     "rgba(255,255,255,0.15)",
	"chip-border-radius": "20px",

	"heatmap-empty": "rgba(255,255,255,0.1)",

	"icon-style": "emoji",
	"hr-color":   "#7c3aed",

	"obsidian-accent-color": "#7c3aed",
	"sync-to-obsidian":      true,
}

// Default returns a deep copy of the built-in default theme.
func Default() Bag {
	return defaults.Clone()
}
