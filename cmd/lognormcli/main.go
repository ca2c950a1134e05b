package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	lognorm "github.com/rsyslog/go-lognorm"
)

const helpText = `lognormcli — interactive PDAG normalization REPL

Commands:
  load <name> <file>   Load a JSON rulebase from file
  unload <name>        Remove a loaded rulebase
  list                 List all loaded rulebases
  use <name>           Set the active rulebase for normalization
  stats                Show PDAG shape stats for the active rulebase
  help                 Show this help message
  exit / quit          Exit the REPL

Any other input is normalized as a line of log input against the active
rulebase.
`

func main() {
	contexts := make(map[string]*lognorm.Context)
	var active string

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("lognormcli — PDAG log normalization engine")
	fmt.Println(`Type "help" for available commands.`)
	fmt.Println()

	for {
		if active != "" {
			fmt.Printf("[%s]> ", active)
		} else {
			fmt.Print("> ")
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "exit", "quit":
			return

		case "help":
			fmt.Print(helpText)

		case "list":
			if len(contexts) == 0 {
				fmt.Println("(no rulebases loaded)")
			} else {
				for name := range contexts {
					marker := " "
					if name == active {
						marker = "*"
					}
					fmt.Printf("  %s %s\n", marker, name)
				}
			}

		case "use":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: use <name>")
				continue
			}
			name := parts[1]
			if _, ok := contexts[name]; !ok {
				fmt.Fprintf(os.Stderr, "no rulebase named %q\n", name)
				continue
			}
			active = name
			fmt.Printf("active rulebase set to %q\n", name)

		case "load":
			if len(parts) < 3 {
				fmt.Fprintln(os.Stderr, "usage: load <name> <file>")
				continue
			}
			name, path := parts[1], parts[2]
			lc, err := lognorm.LoadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error loading %q: %v\n", path, err)
				continue
			}
			contexts[name] = lc
			if active == "" {
				active = name
			}
			fmt.Printf("loaded %q\n", name)

		case "unload":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: unload <name>")
				continue
			}
			name := parts[1]
			if _, ok := contexts[name]; !ok {
				fmt.Fprintf(os.Stderr, "no rulebase named %q\n", name)
				continue
			}
			delete(contexts, name)
			if active == name {
				active = ""
			}
			fmt.Printf("unloaded %q\n", name)

		case "stats":
			if active == "" {
				fmt.Fprintln(os.Stderr, "no active rulebase — use 'load' or 'use' first")
				continue
			}
			r := contexts[active].Stats()
			fmt.Printf("nodes=%d terminals=%d edges=%d longest-path=%d\n", r.Nodes, r.Terminals, r.Edges, r.LongestPath)

		default:
			if active == "" {
				fmt.Fprintln(os.Stderr, "no active rulebase — use 'load' or 'use' first")
				continue
			}
			outcome, err := contexts[active].Normalize(line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "normalize error: %v\n", err)
				continue
			}
			fmt.Println(outcome.String())
		}
	}
}
