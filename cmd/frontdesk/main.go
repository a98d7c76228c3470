// Command frontdesk runs the gym or hospital front-desk REST API.
package main

import "github.com/mesh-intelligence/frontdesk/internal/cli"

func main() {
	cli.Execute()
}
