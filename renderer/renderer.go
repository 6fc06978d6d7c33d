// Package renderer turns wallet data into markdown documents for the
// terminal. Each render function pairs a view struct with an embedded
// template; the output is plain markdown, styling is the caller's concern.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/walletdex/walletdex"
)

//go:embed templates/*.md
var templates embed.FS

// RenderList renders the current view as a markdown table, one row per
// wallet, headed by the active filter summary.
func RenderList(v *ListView) string {
	return renderTemplate("list", "templates/list.md", nil, v)
}

// RenderWallet renders the full profile of one wallet.
func RenderWallet(v *WalletView) string {
	partials := map[string]string{
		"wallet_features": "templates/wallet_features.md",
		"wallet_security": "templates/wallet_security.md",
		"wallet_links":    "templates/wallet_links.md",
	}
	return renderTemplate("wallet", "templates/wallet.md", partials, v)
}

// RenderComparison renders the selected wallets side by side, one column per
// wallet.
func RenderComparison(v *ComparisonView) string {
	return renderTemplate("comparison", "templates/comparison.md", nil, v)
}

// RenderAnalytics renders the payment-support aggregates and the per-feature
// gaps.
func RenderAnalytics(v *AnalyticsView) string {
	return renderTemplate("analytics", "templates/analytics.md", nil, v)
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials. Template failures come back as the rendered string so
// a broken template never crashes a command.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(helpers()).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// helpers is the FuncMap shared by every template.
func helpers() template.FuncMap {
	return template.FuncMap{
		"yesno": func(b bool) string {
			if b {
				return "Yes"
			}
			return "No"
		},
		"check": func(b bool) string {
			if b {
				return "✓"
			}
			return "✗"
		},
		"platforms": func(ps []walletdex.Platform) string {
			parts := make([]string, 0, len(ps))
			for _, p := range ps {
				parts = append(parts, string(p))
			}
			return strings.Join(parts, ", ")
		},
		"qr": func(p walletdex.PaySupport) string {
			switch p {
			case walletdex.PayFull:
				return "full"
			case walletdex.PayPartial:
				return "partial"
			default:
				return "none"
			}
		},
		"pct": func(f float64) string {
			return fmt.Sprintf("%.1f%%", f)
		},
	}
}
