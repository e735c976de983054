// Command qrcode encodes one datum as a QR code and writes it to a PNG or SVG
// file.
//
// Exit codes: 0 on success, 1 for usage errors, 2 when the datum cannot be
// encoded and 4 when the image cannot be written.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errorColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)

	// cobra falls back to os.Args for nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(newOptions(), logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return report(cmd, stderr, err)
	}

	return exitOK
}

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)

	return logger
}

// report prints the one line diagnostic for err, followed by the usage banner
// for usage errors, and returns the exit code.
func report(cmd *cobra.Command, w io.Writer, err error) int {
	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		exitErr = &exitError{code: exitUsage, err: err}
	}

	errorColor.Fprintln(w, exitErr.Error())

	if exitErr.code == exitUsage {
		fmt.Fprint(w, cmd.UsageString())
	}

	return exitErr.code
}
