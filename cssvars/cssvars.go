// Package cssvars renders a resolved theme as CSS custom properties, both
// under its own --theme- prefix and under the names the Minimal theme reads.
package cssvars

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/prism-vault/prism/constant"
	"github.com/prism-vault/prism/log"
	"github.com/prism-vault/prism/theme"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Prefix is prepended to every theme property.
const Prefix = "--theme-"

// minimal maps Minimal's variable names to theme properties.
var minimal = []struct {
	name string
	prop theme.Property
}{
	{"bg1", theme.ColorBackground},
	{"bg2", theme.ColorSurface},
	{"bg3", theme.ColorSurfaceHover},
	{"ui1", theme.ColorBorder},
	{"ui2", theme.ColorBorderHighlight},
	{"ui3", theme.ColorBorderActive},
	{"ax1", theme.ColorAccent},
	{"ax2", theme.ColorAccentHover},
	{"ax3", theme.ColorAccentActive},
	{"sp1", theme.ColorTextOnAccent},
	{"tx1", theme.ColorText},
	{"tx2", theme.ColorTextMuted},
	{"tx3", theme.ColorTextFaint},
	{"hl1", theme.ColorSelectionBg},
	{"hl2", theme.ColorHighlightBg},
	{"color-red", theme.ColorRed},
	{"color-orange", theme.ColorOrange},
	{"color-yellow", theme.ColorYellow},
	{"color-green", theme.ColorGreen},
	{"color-cyan", theme.ColorCyan},
	{"color-blue", theme.ColorBlue},
	{"color-purple", theme.ColorPurple},
	{"color-pink", theme.ColorPink},
	{"h1-color", theme.ColorHeading1},
	{"h2-color", theme.ColorHeading2},
	{"h3-color", theme.ColorHeading3},
	{"h4-color", theme.ColorHeading4},
	{"h5-color", theme.ColorHeading5},
	{"h6-color", theme.ColorHeading6},
	{"icon-color", theme.ColorIcon},
	{"icon-color-hover", theme.ColorIconHover},
	{"icon-color-active", theme.ColorIconActive},
	{"link-color", theme.ColorLink},
	{"link-color-hover", theme.ColorLinkHover},
	{"link-external-color", theme.ColorLinkExternal},
	{"link-external-color-hover", theme.ColorLinkExternalHover},
	{"graph-node", theme.ColorGraphNode},
	{"graph-node-focused", theme.ColorGraphNodeActive},
	{"graph-node-tag", theme.ColorGraphNodeTag},
	{"font-interface-theme", theme.FontInterface},
	{"font-text-theme", theme.FontText},
	{"font-monospace-theme", theme.FontMono},
}

// Declaration is one custom property.
type Declaration struct {
	Name  string
	Value string
}

// Declarations lists the custom properties for props: every scalar property
// under Prefix, sorted, followed by the Minimal variables that are set.
func Declarations(props theme.Bag) []Declaration {
	keys := lo.Keys(props)
	sort.Strings(keys)

	decls := lo.FilterMap(keys, func(k string, _ int) (Declaration, bool) {
		v, ok := scalar(props[k])
		return Declaration{Name: Prefix + k, Value: v}, ok
	})

	for _, m := range minimal {
		if v, ok := scalar(props[string(m.prop)]); ok {
			decls = append(decls, Declaration{Name: "--" + m.name, Value: v})
		}
	}
	return decls
}

// scalar renders strings and numbers; anything else, or a value that could
// break out of the declaration, is skipped.
func scalar(v any) (string, bool) {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case int:
		s = strconv.Itoa(t)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return "", false
	}

	if s == "" || strings.ContainsAny(s, "{};\n") {
		return "", false
	}
	return s, true
}

// Render returns a :root rule declaring every custom property of props.
func Render(props theme.Bag) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, d := range Declarations(props) {
		fmt.Fprintf(&b, "  %s: %s;\n", d.Name, d.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

// Export writes the rendered snippet for r into the vault's snippets folder.
func Export(fs afero.Afero, r *theme.Resolved) error {
	p := constant.SnippetPath
	if err := fs.MkdirAll(path.Dir(p), os.ModePerm); err != nil {
		return fmt.Errorf("export css: %w", err)
	}

	header := fmt.Sprintf("/* %s: %s */\n", constant.Prism, r.ID())
	if err := fs.WriteFile(p, []byte(header+Render(r.Props)), 0o644); err != nil {
		return fmt.Errorf("export css: %w", err)
	}

	log.WithFields(log.Fields{"path": p, "theme": r.ID()}).Info("exported css variables")
	return nil
}
