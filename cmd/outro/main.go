// Command outro prints the share-and-follow outro for a blog post title.
//
//	outro "Organizing Confluence Pages: How to Conquer Your Mess With Tags"
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/presbrey/outro/outro"
)

const usage = `Usage: outro [options] "This is the title I want to use"`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("outro", flag.ContinueOnError)
	flags.SetOutput(stdout)
	asJSON := flags.Bool("json", false, "print slug, links and markdown as JSON")
	slugOnly := flags.Bool("slug", false, "print only the slug")
	urlOnly := flags.Bool("url", false, "print only the post URL")
	flags.Usage = func() {
		fmt.Fprintln(stdout, usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 1
	}

	// Exactly one non-blank title is required
	rest := flags.Args()
	if len(rest) != 1 || strings.TrimSpace(rest[0]) == "" {
		if len(rest) > 1 {
			fmt.Fprintf(stdout, "Error: expected one title argument, got %d (quote the title)\n", len(rest))
		} else {
			fmt.Fprintln(stdout, "Error: no title provided")
		}
		flags.Usage()
		return 1
	}

	res := outro.Build(rest[0])

	switch {
	case *asJSON:
		enc := json.NewEncoder(stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", err)
			return 1
		}
	case *slugOnly:
		fmt.Fprintln(stdout, res.Slug)
	case *urlOnly:
		fmt.Fprintln(stdout, res.PostURL)
	default:
		fmt.Fprintln(stdout, res.Markdown)
	}
	return 0
}
