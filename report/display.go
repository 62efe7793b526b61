package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cznic/mathutil"
	"github.com/pterm/pterm"
)

var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.FgRed
	infoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	infoColorFG  = pterm.FgLightGreen
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	errorStyleBG.Print("internal compiler error")
	errorColorFG.Println(" " + message)
	fmt.Println("This error was not supposed to happen: please open an issue on GitHub.")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	errorStyleBG.Print("fatal error")
	errorColorFG.Println(" " + message)
}

// displayInfo displays a tagged informational message.
func displayInfo(tag, message string) {
	infoStyleBG.Print(tag)
	infoColorFG.Println(" " + message)
}

// displayCompileMessage displays a compilation error.  The label names the
// error kind; unitName labels the translation unit the error occurred in.
func displayCompileMessage(label, unitName, src string, span *TextSpan, message string) {
	if span == nil {
		fmt.Printf("%s: ", unitName)
	} else {
		fmt.Printf("%s:%d:%d: ", unitName, span.StartLine+1, span.StartCol+1)
	}

	errorStyleBG.Print("error")
	fmt.Printf(" (%s): %s\n", label, message)

	if span != nil && src != "" {
		displaySourceText(src, span)
	}
}

// displaySourceText displays the segment of source text selected by a text
// span, with carets underlining the selection.
func displaySourceText(src string, span *TextSpan) {
	srcLines := strings.Split(src, "\n")

	startLine := mathutil.Clamp(span.StartLine, 0, len(srcLines)-1)
	endLine := mathutil.Clamp(span.EndLine, 0, len(srcLines)-1)
	lines := srcLines[startLine : endLine+1]

	// The width reserved for line numbers in the margin.
	maxLineNumLen := len(strconv.Itoa(endLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", "    ")

		fmt.Printf(lineNumFmtStr, i+startLine+1)
		fmt.Println(line)

		// Carets begin at the start column on the first line and at column
		// zero on every subsequent line; they stop at the end column on the
		// last line and run to the end of the line otherwise.
		caretStart := 0
		if i == 0 {
			caretStart = mathutil.Clamp(span.StartCol, 0, len(line))
		}

		caretEnd := len(line)
		if i == len(lines)-1 {
			caretEnd = mathutil.Clamp(span.EndCol+1, caretStart, len(line))
		}

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")
		fmt.Print(strings.Repeat(" ", caretStart))
		errorColorFG.Println(strings.Repeat("^", mathutil.Max(caretEnd-caretStart, 1)))
	}

	fmt.Println()
}
