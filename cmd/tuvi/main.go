// Command tuvi computes Tử Vi natal charts and lunar calendar conversions.
package main

import "github.com/papapumpkin/tuvi/cmd"

func main() {
	cmd.Execute()
}
