package console

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func Exit(code int, msg string, args ...interface{}) cli.ExitCoder {
	return cli.Exit(fmt.Sprintf(msg, args...), code)
}

// ExitErr wraps an error as a non-zero exit with the standard error coloring.
func ExitErr(code int, context string, err error) cli.ExitCoder {
	return cli.Exit(fmt.Sprintf("%s: %s", context, Red(err)), code)
}
