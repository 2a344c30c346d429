package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// Ask prints a prompt to w and reads a single line of input from reader.
// A blank answer falls back to defaultValue, which is shown in brackets
// when non-empty. If EOF occurs after some input was read, the partial
// line is used.
//
// Example prompt format:
//
//	Admin email [admin@plakawatch.local]: _
func Ask(reader *bufio.Reader, label, defaultValue string, w io.Writer) (string, error) {
	prompt := label + ": "
	if defaultValue != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, defaultValue)
	}
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	if answer := strings.TrimSpace(line); answer != "" {
		return answer, nil
	}
	return defaultValue, nil
}

// AskSecret prints a prompt to w and reads a password from the user's
// terminal without echo. A newline is printed after the read to keep the
// UI tidy. A blank answer falls back to defaultValue.
func AskSecret(label, defaultValue string, w io.Writer) (string, error) {
	prompt := label + ": "
	if defaultValue != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, defaultValue)
	}
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}

	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	if answer := strings.TrimSpace(string(pw)); answer != "" {
		return answer, nil
	}
	return defaultValue, nil
}
