package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input
// from reader. The trailing newline is trimmed. If EOF occurs after
// some input was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from
// the user's terminal without echo.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// dueDateLayout is the CLI input form for todo due dates.
const dueDateLayout = "2006-01-02 15:04"

// GetDueDate prompts for a due date. An empty line means now.
func GetDueDate(reader *bufio.Reader, w io.Writer) (time.Time, error) {
	text, err := GetSimpleText(reader, "Enter due date (YYYY-MM-DD HH:MM, empty for now)", w)
	if err != nil {
		return time.Time{}, err
	}
	if text == "" {
		return time.Now(), nil
	}
	due, err := time.ParseInLocation(dueDateLayout, text, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("due date must look like 2006-01-02 15:04")
	}
	return due, nil
}
