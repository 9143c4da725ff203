package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/uzzu/kotlin-dsl/internal/errors"
	"github.com/uzzu/kotlin-dsl/internal/jvm"
	"github.com/uzzu/kotlin-dsl/internal/kmetadata"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.class|file.kotlin_module>...",
		Short: "Decode emitted class files and module descriptors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := inspectFile(cmd.OutOrStdout(), path); err != nil {
					return errors.Wrapf(err, "inspecting %s", path)
				}
			}

			return nil
		},
	}
}

func inspectFile(out io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if filepath.Ext(path) == ".kotlin_module" {
		module, err := kmetadata.ParseModule(data)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "module %s\n", filepath.Base(path))
		dumper.Fdump(out, module)

		return nil
	}

	class, err := jvm.Parse(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "class %s extends %s (version %d.%d)\n", class.Name, class.Super, class.Major, class.Minor)

	for _, m := range class.Methods {
		fmt.Fprintf(out, "\n%s%s", m.Name, m.Descriptor)
		if m.Signature != "" {
			fmt.Fprintf(out, " signature %s", m.Signature)
		}
		fmt.Fprintf(out, " stack=%d locals=%d\n", m.MaxStack, m.MaxLocals)

		for _, in := range m.Instructions {
			fmt.Fprintf(out, "  %4d: %s\n", in.Offset, in)
		}
	}

	header, err := kmetadata.HeaderOf(class)
	if err != nil {
		return err
	}

	pkg, err := header.Package()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nkotlin.Metadata k=%d mv=%v\n", header.Kind, header.MetadataVersion)
	dumper.Fdump(out, pkg)

	return nil
}
