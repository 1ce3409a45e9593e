package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arithlab/arith"
)

func main() {
	if err := run(os.Args[1:]); err == flag.ErrHelp {
		os.Exit(1)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var cmd string
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "", "-h", "--help", "help":
		usage()
		return flag.ErrHelp
	case "list":
		return runList(args)
	default:
		return fmt.Errorf(`arith-rules %s: unknown command`, cmd)
	}
}

// runList prints every rule in the catalog with its patterns and
// condition variables. Catalog construction itself performs the width
// consistency check, so a successful listing doubles as validation.
func runList(args []string) error {
	fs := flag.NewFlagSet("arith-rules-list", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "print patterns and condition variables")
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, rule := range arith.NewCatalog() {
		if !*verbose {
			fmt.Println(rule.Name())
			continue
		}
		lhs, rhs := rule.Patterns()
		fmt.Printf("%s:\n", rule.Name())
		fmt.Printf("  lhs: %s\n", lhs)
		fmt.Printf("  rhs: %s\n", rhs)
		if cond := rule.Condition(); cond != nil {
			fmt.Printf("  condition vars: %v\n", cond.Params)
		}
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `
arith-rules inspects the arithmetic rewrite-rule catalog.

Usage:

	arith-rules <command> [arguments]

The commands are:

	list        validate the catalog and list its rules
	help        this screen
`[1:])
}
