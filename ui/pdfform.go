package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gaurav-prasanna/pagelift/core"
)

const pdfInstructions = `Web content often lacks depth or accuracy. AI can enhance content by adding context, validating facts, and producing higher-quality summaries.

1. Enter the URL of a web page
2. ctrl+e  Extract Data
3. ctrl+a  AI Modified Data
4. ctrl+g  Generate PDF

ctrl+r resets the form.`

// Result messages carry the form generation they were started in; a reset
// bumps the generation so late results are dropped.
type extractedMsg struct {
	gen  int
	page *core.Page
	err  error
}

type enhancedMsg struct {
	gen  int
	text string
	err  error
}

type generatedMsg struct {
	gen  int
	path string
	err  error
}

// PDFForm is the content-to-PDF form. Extracted and enhanced data stay
// available across actions until the form is reset.
type PDFForm struct {
	ctx      context.Context
	svc      Enhancer
	renderer core.Renderer
	writer   Writer
	styles   *Styles

	url     textinput.Model
	spinner spinner.Model
	output  viewport.Model

	gen      int
	busy     string
	page     *core.Page
	enhanced string
	pdfPath  string
	status   status

	width  int
	height int
}

// NewPDFForm creates the form. A nil Styles selects the defaults.
func NewPDFForm(ctx context.Context, svc Enhancer, renderer core.Renderer, writer Writer, s *Styles) *PDFForm {
	if s == nil {
		s = DefaultStyles()
	}
	ti := textinput.New()
	ti.Placeholder = "Enter your url here..."
	ti.Focus()
	ti.CharLimit = 2048
	ti.Width = 60

	return &PDFForm{
		ctx:      ctx,
		svc:      svc,
		renderer: renderer,
		writer:   writer,
		styles:   s,
		url:      ti,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		output:   viewport.New(80, 12),
	}
}

// Init starts the cursor blinking.
func (f *PDFForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and the results of background actions.
func (f *PDFForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.resize(msg.Width, msg.Height)
		return f, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return f, tea.Quit
		case "ctrl+e":
			return f, f.extract()
		case "ctrl+a":
			return f, f.enhance()
		case "ctrl+g":
			return f, f.generate()
		case "ctrl+r":
			f.reset()
			return f, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			f.output, cmd = f.output.Update(msg)
			return f, cmd
		}

	case extractedMsg:
		if msg.gen != f.gen {
			return f, nil
		}
		f.busy = ""
		if msg.err != nil {
			f.status = status{text: msg.err.Error(), kind: statusError}
			return f, nil
		}
		f.page, f.enhanced, f.pdfPath = msg.page, "", ""
		f.showOutput("Extracted data", msg.page.Text)
		f.status = status{text: fmt.Sprintf("Extracted %d words from %s", wordCount(msg.page.Text), msg.page.Metadata.URL), kind: statusSuccess}
		return f, nil

	case enhancedMsg:
		if msg.gen != f.gen || f.page == nil {
			return f, nil
		}
		f.busy = ""
		if msg.err != nil {
			f.status = status{text: msg.err.Error(), kind: statusError}
			return f, nil
		}
		f.enhanced, f.pdfPath = msg.text, ""
		report := f.svc.Report(msg.text, f.page.Metadata, true)
		f.showOutput("AI Modified Data", report.Text)
		f.status = status{text: fmt.Sprintf("Enhanced into %d paragraphs", len(report.Paragraphs)), kind: statusSuccess}
		return f, nil

	case generatedMsg:
		if msg.gen != f.gen {
			return f, nil
		}
		f.busy = ""
		if msg.err != nil {
			f.status = status{text: "Failed to generate PDF: " + msg.err.Error(), kind: statusError}
			return f, nil
		}
		f.pdfPath = msg.path
		f.status = status{text: "PDF generated successfully: " + msg.path, kind: statusSuccess}
		return f, nil

	case spinner.TickMsg:
		if f.busy == "" {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd
	}

	var cmd tea.Cmd
	f.url, cmd = f.url.Update(msg)
	return f, cmd
}

func (f *PDFForm) extract() tea.Cmd {
	if f.busy != "" {
		return nil
	}
	rawURL := strings.TrimSpace(f.url.Value())
	if rawURL == "" {
		f.status = status{text: WarnNoURL, kind: statusWarn}
		return nil
	}
	f.busy = "Extracting data"
	ctx, svc, gen := f.ctx, f.svc, f.gen
	return tea.Batch(f.spinner.Tick, func() tea.Msg {
		page, err := svc.Extract(ctx, rawURL)
		return extractedMsg{gen: gen, page: page, err: err}
	})
}

func (f *PDFForm) enhance() tea.Cmd {
	if f.busy != "" {
		return nil
	}
	if f.page == nil {
		f.status = status{text: WarnNoExtract, kind: statusWarn}
		return nil
	}
	f.busy = "Enhancing with AI"
	ctx, svc, text, gen := f.ctx, f.svc, f.page.Text, f.gen
	return tea.Batch(f.spinner.Tick, func() tea.Msg {
		out, err := svc.Enhance(ctx, text)
		return enhancedMsg{gen: gen, text: out, err: err}
	})
}

func (f *PDFForm) generate() tea.Cmd {
	if f.busy != "" {
		return nil
	}
	if strings.TrimSpace(f.enhanced) == "" {
		f.status = status{text: WarnNoEnhanced, kind: statusWarn}
		return nil
	}
	f.busy = "Generating PDF"
	svc, renderer, writer := f.svc, f.renderer, f.writer
	text, source, gen := f.enhanced, f.page.Metadata, f.gen
	return tea.Batch(f.spinner.Tick, func() tea.Msg {
		data, err := renderer.Render(svc.Report(text, source, true))
		if err != nil {
			return generatedMsg{gen: gen, err: err}
		}
		path, err := writer.Write(PDFFileName, source.URL, data, renderer.Extension())
		return generatedMsg{gen: gen, path: path, err: err}
	})
}

// reset clears all state and the URL input. Results of actions still
// running are discarded when they arrive.
func (f *PDFForm) reset() {
	f.gen++
	f.busy = ""
	f.page, f.enhanced, f.pdfPath = nil, "", ""
	f.url.Reset()
	f.url.Focus()
	f.output.SetContent("")
	f.status = status{text: "Form reset.", kind: statusInfo}
}

func (f *PDFForm) showOutput(heading, text string) {
	content := f.styles.Subtitle.Render(heading) + "\n\n" + lipgloss.NewStyle().Width(f.output.Width).Render(text)
	f.output.SetContent(content)
	f.output.GotoTop()
}

func (f *PDFForm) resize(width, height int) {
	f.width, f.height = width, height
	w := mainWidth(width)
	f.url.Width = w - 8
	f.output.Width = w - 4
	if h := height - 16; h > 3 {
		f.output.Height = h
	}
}

// View renders the form.
func (f *PDFForm) View() string {
	st := f.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("AI Content-to-PDF") + "\n")
	b.WriteString(st.Muted.Render("Convert your content into structured PDF format.") + "\n\n")
	b.WriteString(st.Label.Render("please enter url of a web-page:") + "\n")
	b.WriteString(st.Input.Render(f.url.View()) + "\n")
	b.WriteString(renderKeys(st, []keyHelp{
		{"ctrl+e", "Extract Data"},
		{"ctrl+a", "AI Modified Data"},
		{"ctrl+g", "Generate PDF"},
		{"ctrl+r", "Reset"},
		{"esc", "Quit"},
	}) + "\n\n")

	if f.busy != "" {
		b.WriteString(f.spinner.View() + " " + f.busy + "...\n")
	} else if f.status.text != "" {
		b.WriteString(f.status.render(st) + "\n")
	} else {
		b.WriteString("\n")
	}
	if f.page != nil || f.enhanced != "" {
		b.WriteString(st.Panel.Render(f.output.View()))
	}

	sidebar := st.Subtitle.Render("Instructions") + "\n\n" + st.Normal.Render(pdfInstructions)
	return layout(st, f.width, b.String(), sidebar)
}

// Page returns the extracted page, if any.
func (f *PDFForm) Page() *core.Page { return f.page }

// Enhanced returns the model reply, if any.
func (f *PDFForm) Enhanced() string { return f.enhanced }

// PDFPath returns the path of the last generated PDF.
func (f *PDFForm) PDFPath() string { return f.pdfPath }

// Status returns the current status line text.
func (f *PDFForm) Status() string { return f.status.text }
