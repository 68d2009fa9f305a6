package main

import (
	"log"
	"os"

	"golang.org/x/term"

	"github.com/masomo-lms/portal/core"
	logsvc "github.com/masomo-lms/portal/services/logger"
)

func main() {
	logger, err := logsvc.NewZapLogger(core.Conf.LogMode)
	if err != nil {
		log.Fatalf("setting up logger: %v", err)
	}
	defer logger.Sync()

	// start CLI
	cli := commandLine{
		out:    os.Stdout,
		in:     os.Stdin,
		indent: term.IsTerminal(int(os.Stdout.Fd())),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("admin command failed", err, map[string]interface{}{"args": os.Args[1:]})
		}
		logger.Sync()
		os.Exit(1)
	}
}
