// Package ui renders pipeline progress in the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gaia/internal/buildpipeline"
)

// ProgressModel is a Bubble Tea model listing every file with its state.
type ProgressModel struct {
	title      string
	final      buildpipeline.Stage
	events     <-chan buildpipeline.Event
	spinner    spinner.Model
	prog       progress.Model
	items      []fileItem
	index      map[string]int
	stageLabel string
	width      int
	done       bool
	failed     int
}

type fileItem struct {
	path     string
	label    string
	stage    buildpipeline.Stage
	finished bool
}

type (
	eventMsg buildpipeline.Event
	doneMsg  struct{}
)

// NewProgressModel returns a model fed by events. A file counts as finished
// once it reaches final with StatusDone, or on any error or cache hit.
func NewProgressModel(title string, files []string, final buildpipeline.Stage, events <-chan buildpipeline.Event) *ProgressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	m := &ProgressModel{
		title:   title,
		final:   final,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   make([]fileItem, 0, len(files)),
		index:   make(map[string]int, len(files)),
		width:   80,
	}
	for i, file := range files {
		m.items = append(m.items, fileItem{path: file, label: "queued"})
		m.index[file] = i
	}
	return m
}

func (m *ProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.apply(buildpipeline.Event(msg))
		return m, tea.Batch(cmd, m.listen())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = max(10, msg.Width-4)
		}
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *ProgressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	header := m.title
	if m.stageLabel != "" {
		header = fmt.Sprintf("%s (%s)", header, m.stageLabel)
	}
	if m.done {
		header = "done: " + header
		if m.failed > 0 {
			header += fmt.Sprintf(", %d failed", m.failed)
		}
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n\n")

	const statusWidth = 10
	nameWidth := max(20, m.width-statusWidth-4)
	for _, item := range m.items {
		status := styleStatus(item.label).Render(fmt.Sprintf("%*s", statusWidth, item.label))
		fmt.Fprintf(&b, "  %s %s\n", status, truncate(item.path, nameWidth))
	}
	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

// Percent is the completion ratio shown by the bar.
func (m *ProgressModel) Percent() float64 {
	if len(m.items) == 0 {
		return 1
	}
	total := 0.0
	for _, item := range m.items {
		if item.finished {
			total++
			continue
		}
		total += stageWeight(item.stage)
	}
	return total / float64(len(m.items))
}

func (m *ProgressModel) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *ProgressModel) apply(ev buildpipeline.Event) tea.Cmd {
	label := statusLabel(ev.Stage, ev.Status)
	if ev.File == "" {
		if label != "" {
			m.stageLabel = label
		}
		return nil
	}
	idx, ok := m.index[ev.File]
	if !ok || label == "" {
		return nil
	}
	item := &m.items[idx]
	if item.finished {
		return nil
	}
	item.label = label
	item.stage = ev.Stage
	switch ev.Status {
	case buildpipeline.StatusError:
		item.finished = true
		m.failed++
	case buildpipeline.StatusCached:
		item.finished = true
	case buildpipeline.StatusDone:
		item.finished = ev.Stage == m.final
	}
	return m.prog.SetPercent(m.Percent())
}

func stageWeight(stage buildpipeline.Stage) float64 {
	switch stage {
	case buildpipeline.StageParse:
		return 0.2
	case buildpipeline.StageCheck:
		return 0.5
	case buildpipeline.StageEmit:
		return 0.8
	}
	return 0
}

func statusLabel(stage buildpipeline.Stage, status buildpipeline.Status) string {
	switch status {
	case buildpipeline.StatusQueued, buildpipeline.StatusDone, buildpipeline.StatusCached:
		return string(status)
	case buildpipeline.StatusError:
		return "error"
	case buildpipeline.StatusWorking:
		switch stage {
		case buildpipeline.StageParse:
			return "parsing"
		case buildpipeline.StageCheck:
			return "checking"
		case buildpipeline.StageEmit:
			return "emitting"
		}
	}
	return ""
}

func styleStatus(label string) lipgloss.Style {
	switch label {
	case "done", "cached":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "queued":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	}
}

// truncate обрезает путь по ширине терминальных колонок, а не по байтам.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
