// Command ropetrail counts the grid positions visited by the tail of a rope
// whose head follows the movement commands in a file.
package main

import "github.com/mouse-blink/ropetrail/cmd"

func main() {
	cmd.Execute()
}
