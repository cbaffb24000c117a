package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"gaia/internal/buildpipeline"
)

// Run drives the progress view while work runs in its own goroutine. work
// receives the sink to report to; Run returns once work has finished and
// the view has drained every event.
func Run(out io.Writer, title string, files []string, final buildpipeline.Stage, work func(buildpipeline.ProgressSink) error) error {
	events := make(chan buildpipeline.Event, 256)
	done := make(chan error, 1)
	go func() {
		err := work(buildpipeline.ChannelSink{Ch: events})
		close(events)
		done <- err
	}()

	model := NewProgressModel(title, files, final, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		// дочитываем канал, чтобы работа не застряла на отправке
		for range events {
		}
	}
	workErr := <-done
	if uiErr != nil {
		return uiErr
	}
	return workErr
}
