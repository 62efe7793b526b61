// Command cflatc is the driver for the cflat compiler middle tier: it lowers
// a translation unit into the program arena, resolves types, and reports the
// collected diagnostics.
package main

func main() {
	Execute()
}
