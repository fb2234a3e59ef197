package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PromptInt asks for an integer in [low, high] and re-prompts until it gets
// one. Non-numeric and out-of-bounds answers print a hint and retry. An error
// is returned only when the input stream ends without a valid value.
func PromptInt(in *bufio.Reader, out io.Writer, label string, low, high int) (int, error) {
	for {
		fmt.Fprintf(out, "%s (%d-%d): ", label, low, high)

		line, readErr := in.ReadString('\n')
		if text := strings.TrimSpace(line); text != "" {
			value, err := strconv.Atoi(text)
			switch {
			case err != nil:
				fmt.Fprintln(out, "Input was not a valid integer value.")
			case value < low || value > high:
				fmt.Fprintf(out, "Input was not inside the bounds (%d-%d).\n", low, high)
			default:
				return value, nil
			}
		}
		if readErr != nil {
			return 0, errors.Wrapf(readErr, "[PromptInt] no valid input for %q", label)
		}
	}
}
