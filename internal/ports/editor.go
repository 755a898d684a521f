package ports

import "os/exec"

// EditorOpener opens report files in an external editor.
type EditorOpener interface {
	// OpenFile opens a report in the user's preferred editor,
	// resolved from $EDITOR with fallbacks to common editors
	OpenFile(path string) error

	// Command returns the exec.Cmd that would open the file, for
	// callers that need to release the terminal themselves (the TUI
	// hands it to bubbletea's ExecProcess)
	Command(path string) (*exec.Cmd, error)
}
