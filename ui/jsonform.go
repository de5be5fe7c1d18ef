package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gaurav-prasanna/pagelift/core"
)

const jsonInstructions = `Turn a free-form prompt into a structured JSON description: intent, role, constraints, examples, tags and complexity.

1. Type or paste your prompt
2. ctrl+g  Generate JSON

pgup/pgdown scroll the result.`

type convertedMsg struct {
	result *core.PromptJSONResult
	err    error
}

// JSONForm is the prompt-to-JSON form.
type JSONForm struct {
	ctx    context.Context
	svc    Converter
	styles *Styles

	prompt  textarea.Model
	spinner spinner.Model
	output  viewport.Model

	busy   bool
	result *core.PromptJSONResult
	status status

	width  int
	height int
}

// NewJSONForm creates the form. A nil Styles selects the defaults.
func NewJSONForm(ctx context.Context, svc Converter, s *Styles) *JSONForm {
	if s == nil {
		s = DefaultStyles()
	}
	ta := textarea.New()
	ta.Placeholder = "Enter your prompt here..."
	ta.ShowLineNumbers = false
	ta.SetWidth(76)
	ta.SetHeight(6)
	ta.Focus()

	return &JSONForm{
		ctx:     ctx,
		svc:     svc,
		styles:  s,
		prompt:  ta,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		output:  viewport.New(80, 12),
	}
}

// Init starts the cursor blinking.
func (f *JSONForm) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles key presses and conversion results.
func (f *JSONForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width, f.height = msg.Width, msg.Height
		w := mainWidth(msg.Width)
		f.prompt.SetWidth(w - 4)
		f.output.Width = w - 4
		if h := msg.Height - 20; h > 3 {
			f.output.Height = h
		}
		return f, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return f, tea.Quit
		case "ctrl+g":
			return f, f.convert()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			f.output, cmd = f.output.Update(msg)
			return f, cmd
		}

	case convertedMsg:
		f.busy = false
		if msg.err != nil {
			f.status = status{text: msg.err.Error(), kind: statusError}
			return f, nil
		}
		f.result = msg.result
		if msg.result.Valid {
			f.output.SetContent(msg.result.Pretty)
			f.status = status{text: "JSON generated.", kind: statusSuccess}
		} else {
			f.output.SetContent(f.styles.Subtitle.Render("JSON Output") + "\n\n" + strings.TrimSpace(msg.result.Raw))
			f.status = status{text: "The reply is not valid JSON; showing it as is.", kind: statusWarn}
		}
		f.output.GotoTop()
		return f, nil

	case spinner.TickMsg:
		if !f.busy {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd
	}

	var cmd tea.Cmd
	f.prompt, cmd = f.prompt.Update(msg)
	return f, cmd
}

func (f *JSONForm) convert() tea.Cmd {
	if f.busy {
		return nil
	}
	text := f.prompt.Value()
	if strings.TrimSpace(text) == "" {
		f.status = status{text: WarnNoPrompt, kind: statusWarn}
		return nil
	}
	f.busy = true
	ctx, svc := f.ctx, f.svc
	return tea.Batch(f.spinner.Tick, func() tea.Msg {
		result, err := svc.Convert(ctx, text)
		return convertedMsg{result: result, err: err}
	})
}

// View renders the form.
func (f *JSONForm) View() string {
	st := f.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("Prompt-to-JSON Enhancer") + "\n")
	b.WriteString(st.Muted.Render("Convert your prompt into structured JSON format.") + "\n\n")
	b.WriteString(st.Label.Render("Enter your prompt:") + "\n")
	b.WriteString(f.prompt.View() + "\n")
	b.WriteString(renderKeys(st, []keyHelp{
		{"ctrl+g", "Generate JSON"},
		{"esc", "Quit"},
	}) + "\n\n")

	switch {
	case f.busy:
		b.WriteString(f.spinner.View() + " Calling the model...\n")
	case f.status.text != "":
		b.WriteString(f.status.render(st) + "\n")
	default:
		b.WriteString("\n")
	}
	if f.result != nil {
		b.WriteString(st.Panel.Render(f.output.View()))
	}

	sidebar := st.Subtitle.Render("Instructions") + "\n\n" + st.Normal.Render(jsonInstructions)
	return layout(st, f.width, b.String(), sidebar)
}

// Result returns the last conversion result.
func (f *JSONForm) Result() *core.PromptJSONResult { return f.result }

// Status returns the current status line text.
func (f *JSONForm) Status() string { return f.status.text }
