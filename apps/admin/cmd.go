package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/masomo-lms/portal/core"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out    io.Writer
	in     io.Reader // read when -file is "-"
	indent bool      // pretty-print JSON, set when stdout is a terminal
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  normalize -kind "+strings.Join(kinds, "|")+" -file FILE - print the view model of a backend JSON payload")
	fmt.Fprintln(cli.out, "  term - print the current academic term")
	fmt.Fprintln(cli.out, "  token -user-id ID [-username NAME] [-role ROLE] - print a signed API token")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	normalizeCmd := flag.NewFlagSet("normalize", flag.ContinueOnError)
	normalizeCmd.SetOutput(cli.out)
	normalizeKind := normalizeCmd.String("kind", "", "The payload kind: "+strings.Join(kinds, ", ")+".")
	normalizeFile := normalizeCmd.String("file", "", "The JSON file to read, or - for stdin.")

	tokenCmd := flag.NewFlagSet("token", flag.ContinueOnError)
	tokenCmd.SetOutput(cli.out)
	tokenUserID := tokenCmd.Int64("user-id", 0, "The user's backend id.")
	tokenUsername := tokenCmd.String("username", "", "The user's username.")
	tokenRole := tokenCmd.String("role", core.RoleStudent, "One of student, instructor, admin.")

	switch args[1] {
	case "normalize":
		if err := normalizeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *normalizeKind == "" || *normalizeFile == "" {
			normalizeCmd.Usage()
			return errHelp
		}
		return cli.normalize(*normalizeKind, *normalizeFile)
	case "term":
		return cli.currentTerm()
	case "token":
		if err := tokenCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *tokenUserID == 0 {
			tokenCmd.Usage()
			return errHelp
		}
		return cli.token(core.Session{
			UserID:   *tokenUserID,
			Username: core.CleanString(*tokenUsername, true /* lower */),
			Role:     core.CleanString(*tokenRole, true /* lower */),
		})
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) print(v interface{}) error {
	enc := json.NewEncoder(cli.out)
	if cli.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
