package command

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

func printOK(w io.Writer, format string, a ...any) {
	okColor.Fprint(w, "✅ ")
	fmt.Fprintf(w, format+"\n", a...)
}

func printFail(w io.Writer, format string, a ...any) {
	failColor.Fprint(w, "❌ ")
	fmt.Fprintf(w, format+"\n", a...)
}

func printWarn(w io.Writer, format string, a ...any) {
	warnColor.Fprint(w, "⚠️  ")
	fmt.Fprintf(w, format+"\n", a...)
}
