package views

import "github.com/Davisanity-TW/stock-report/internal/domain"

// ViewState carries the state every view model shares: the terminal
// dimensions and the one-line status message shown under the content.
// Embed it in view models.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets the status message. isErr selects error styling.
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the status message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages the views exchange through the application model. Exported
// ones cross the package boundary to the app's Update loop.

// SwitchToPreviewMsg opens a report in the preview view
type SwitchToPreviewMsg struct {
	Section domain.Section
	Report  domain.Report
}

type SwitchToSearchMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

// OpenEditorMsg asks the application to suspend the TUI and open the
// file in the configured editor.
type OpenEditorMsg struct {
	Path string
}

// errMsg carries a failure into the active view's status line
type errMsg struct {
	err error
}

// successMsg carries a confirmation into the active view's status line
type successMsg struct {
	message string
}
