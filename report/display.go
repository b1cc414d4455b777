package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// displayError prints a tagged error message to the console.
func displayError(tag, msg string) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + msg)
}

// displayWarning prints a warning message to the console.
func displayWarning(msg string, args ...interface{}) {
	WarnStyleBG.Print("Warning")
	WarnColorFG.Println(" " + fmt.Sprintf(msg, args...))
}

// displayInfo prints an informational message to the user.
func displayInfo(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}
