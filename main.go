package main

import (
	"fmt"
	"os"
	"strings"

	"blogbox/cli"
)

const cliVersion = "1.0.0"

// exit is swappable for tests
var exit = os.Exit

func main() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogbox version %s\n", cliVersion)
	case "serve", "init", "clean", "backup", "restore":
		cli.HandleCommand(os.Args[1:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogbox <command> [options]
Commands:
  help                                      Display this help message.
  version                                   Show version information.
  serve [--addr :8080] [--db data/badger]   Run the blog service.
  init                                      Initialize a new empty database.
  clean                                     Clean the blog database.
  backup                                    Create a backup of the database.
  restore [file]                            Restore database from backup.
`
	fmt.Println(helpText)
}
