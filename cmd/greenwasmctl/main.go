// Command greenwasmctl is a diagnostic front-end over the wasm decoder: it
// loads a .wasm file from disk and reports the shape of its decoded module
// (section counts, start function, exports) without instantiating or
// executing it.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := RootCommand.Execute(); err != nil {
		logrus.WithError(err).Error("greenwasmctl failed")
		os.Exit(1)
	}
}
