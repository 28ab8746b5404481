// internal/tui/browser.go
//
// Receipt actions (the bill PDF and the prefilled share message) are links;
// the TUI hands them to the system browser, the terminal analogue of the
// dashboard's target="_blank".

package tui

import (
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

func openInBrowser(url string) tea.Cmd {
	return func() tea.Msg {
		args := append(browserCommand(), url)
		cmd := exec.Command(args[0], args[1:]...)
		err := cmd.Start()
		return browserOpenedMsg{url: url, err: err}
	}
}

func browserCommand() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}
