package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm gates plan execution on an interactive y/N answer. Anything
// other than "y"/"yes" declines.
func confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "apply this plan? [y/N] ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
