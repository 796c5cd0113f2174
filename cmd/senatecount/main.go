// Command senatecount runs an Australian Senate STV count over a pair
// of AEC CSV files and prints the elected senators.
package main

import (
	"github.com/alecthomas/kong"

	"github.com/senatestv/count-service/cli"
)

func main() {
	var c cli.CLI
	ctx := kong.Parse(&c,
		kong.Name("senatecount"),
		kong.Description("Count an Australian Senate STV election from AEC candidate and preference CSV files."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(c.Run())
}
