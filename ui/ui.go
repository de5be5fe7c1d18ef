// Package ui implements the interactive terminal forms: the content-to-PDF
// form and the prompt-to-JSON form.
package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gaurav-prasanna/pagelift/core"
)

// Form modes accepted by Run.
const (
	ModePDF  = "pdf"
	ModeJSON = "json"
)

// Warnings shown when an action is used out of order.
const (
	WarnNoURL      = "Please enter a url first."
	WarnNoExtract  = "Please extract data first."
	WarnNoEnhanced = "Please modify data first."
	WarnNoPrompt   = "Please enter a prompt first."
)

// PDFFileName is the name of the generated PDF, without extension.
const PDFFileName = "enhanced_content"

// Enhancer is the content-to-PDF flow used by the PDF form.
type Enhancer interface {
	Extract(ctx context.Context, rawURL string) (*core.Page, error)
	Enhance(ctx context.Context, text string) (string, error)
	Report(content string, source core.PageMetadata, enhanced bool) *core.Report
}

// Converter is the prompt-to-JSON flow used by the JSON form.
type Converter interface {
	Convert(ctx context.Context, text string) (*core.PromptJSONResult, error)
}

// Writer stores rendered files.
type Writer interface {
	Write(name, rawURL string, data []byte, ext string) (string, error)
}

// Deps are the services behind the forms.
type Deps struct {
	Enhancer  Enhancer
	Converter Converter
	Renderer  core.Renderer
	Writer    Writer
}

// Run starts the form for mode and blocks until the user quits.
func Run(ctx context.Context, mode string, deps Deps) error {
	var m tea.Model
	switch mode {
	case "", ModePDF:
		m = NewPDFForm(ctx, deps.Enhancer, deps.Renderer, deps.Writer, nil)
	case ModeJSON:
		m = NewJSONForm(ctx, deps.Converter, nil)
	default:
		return fmt.Errorf("unknown ui mode %q (want %s or %s)", mode, ModePDF, ModeJSON)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusError
	statusSuccess
)

// status is the one-line feedback under the form.
type status struct {
	text string
	kind statusKind
}

func (s status) render(st *Styles) string {
	switch s.kind {
	case statusWarn:
		return st.Warning.Render("⚠ " + s.text)
	case statusError:
		return st.Error.Render("✗ " + s.text)
	case statusSuccess:
		return st.Success.Render("✓ " + s.text)
	}
	return st.Muted.Render(s.text)
}

type keyHelp struct{ key, desc string }

func renderKeys(st *Styles, keys []keyHelp) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, st.Key.Render(k.key)+" "+st.Muted.Render(k.desc))
	}
	return strings.Join(parts, st.Muted.Render("  ·  "))
}

// layout places the main column next to the instructions sidebar when
// the terminal is wide enough.
func layout(st *Styles, width int, main, sidebar string) string {
	if width > 0 && width < 100 {
		return lipgloss.JoinVertical(lipgloss.Left, main, "", sidebar)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", st.Sidebar.Width(34).Render(sidebar))
}

// mainWidth is the width left for the main column.
func mainWidth(width int) int {
	switch {
	case width <= 0:
		return 80
	case width < 100:
		return width - 4
	default:
		return width - 42
	}
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
