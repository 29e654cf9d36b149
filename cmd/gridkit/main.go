// Command gridkit runs grid path searches and box unions described in YAML
// scenario files.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
