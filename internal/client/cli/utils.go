package cli

import (
	"fmt"
	"strconv"
)

// parseIndex resolves a 1-based index argument against a list of length n,
// returning the 0-based position.
func parseIndex(args []string, n int) (int, bool) {
	if len(args) == 0 {
		fmt.Println("Which one? Use the number from the last listing.")
		return 0, false
	}
	i, err := strconv.Atoi(args[0])
	if err != nil || i < 1 || i > n {
		fmt.Println("No such entry:", args[0])
		return 0, false
	}
	return i - 1, true
}
