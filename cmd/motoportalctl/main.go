// motoportalctl is the operator CLI for the portal: it seeds the database,
// evaluates a schedule at a given time and runs the catalog filters over a
// seed file without starting the server.
//
//	motoportalctl seed --config=config/local.yaml
//	motoportalctl status --kind=service --hours="Пн-Пт: 9:00-18:00" --at="2024-04-15 12:30"
//	motoportalctl filter --file=config/seed.yaml --kind=school --sort=rating
package main

import (
	"fmt"
	"os"

	_ "time/tzdata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
