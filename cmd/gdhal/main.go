// Command gdhal plans and simulates GD32VF103 bring-ups on the host and
// attaches to a board's serial console.
package main

import "gdhal/cmd/gdhal/cmd"

func main() {
	cmd.Execute()
}
