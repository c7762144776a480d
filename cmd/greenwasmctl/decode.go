package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/domesticmouse/greenwasm/wasm"
	"github.com/domesticmouse/greenwasm/wasm/binary"
)

var decodeCommand = &cobra.Command{
	Use:   "decode <path.wasm>",
	Short: "Decode a Wasm binary module and summarize its sections",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runDecode(args[0], os.Stdout)
	},
}

func init() {
	RootCommand.AddCommand(decodeCommand)
}

func runDecode(path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	logrus.WithField("path", path).WithField("bytes", len(data)).Debug("decoding module")

	m, err := binary.DecodeModule(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	fmt.Fprintf(out, "types:     %d\n", len(m.TypeSection))
	fmt.Fprintf(out, "imports:   %d\n", len(m.ImportSection))
	fmt.Fprintf(out, "functions: %d\n", len(m.FunctionSection))
	fmt.Fprintf(out, "tables:    %d\n", len(m.TableSection))
	fmt.Fprintf(out, "memories:  %d\n", len(m.MemorySection))
	fmt.Fprintf(out, "globals:   %d\n", len(m.GlobalSection))
	fmt.Fprintf(out, "exports:   %d\n", len(m.ExportSection))
	fmt.Fprintf(out, "elements:  %d\n", len(m.ElementSection))
	fmt.Fprintf(out, "code:      %d\n", len(m.CodeSection))
	fmt.Fprintf(out, "data:      %d\n", len(m.DataSection))
	if m.StartSection != nil {
		fmt.Fprintf(out, "start:     func %d\n", *m.StartSection)
	}
	for _, exp := range m.ExportSection {
		fmt.Fprintf(out, "  export %q: %s %d\n", exp.Name, wasm.ExportKindName(exp.Kind), exp.Index)
	}

	return nil
}
