package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arrayview/internal/buf"
	"github.com/joshuapare/arrayview/internal/diag"
	"github.com/joshuapare/arrayview/view/mapped"
	"github.com/joshuapare/arrayview/view/policy"
)

var (
	stridedType   string
	stridedOffset int
	stridedStride int
	stridedIndex  int
)

func init() {
	cmd := newStridedCmd()
	cmd.Flags().StringVarP(&stridedType, "type", "t", "u8", "Field type")
	cmd.Flags().IntVar(&stridedOffset, "offset", 0, "Byte offset of the field inside a record")
	cmd.Flags().IntVar(&stridedStride, "stride", 0, "Record size in bytes")
	cmd.Flags().IntVar(&stridedIndex, "index", -1, "Print only this record's field")
	_ = cmd.MarkFlagRequired("stride")
	rootCmd.AddCommand(cmd)
}

func newStridedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strided <file>",
		Short: "Print one field of every fixed-size record",
		Long: `The strided command treats the file as an array of records of --stride bytes
and prints the field of --type found --offset bytes into each record.

Example:
  viewdump strided mesh.bin --type f32 --offset 12 --stride 32
  viewdump strided users.bin --type str:24 --offset 8 --stride 64 --index 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrided(args[0])
		},
	}
}

func runStrided(path string) error {
	c, err := parseType(stridedType)
	if err != nil {
		return err
	}
	if stridedStride <= 0 {
		return fmt.Errorf("stride must be positive, got %d", stridedStride)
	}
	if !buf.RangeFits(stridedOffset, c.size, stridedStride) {
		return fmt.Errorf("field of %d bytes at offset %d does not fit a %d-byte record",
			c.size, stridedOffset, stridedStride)
	}

	f, err := mapped.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	b := f.Bytes()
	if rem := b.Len() % stridedStride; rem != 0 {
		diag.Warn("ignoring trailing partial record", "file", path, "bytes", rem)
	}
	diag.Debug("viewing field", "file", path, "type", c.name, "offset", stridedOffset, "stride", stridedStride)

	var elems []element
	err = policy.Catch(func() {
		values := c.fields(b, uintptr(stridedOffset), uintptr(stridedStride))
		elems = selectElements(values, stridedIndex)
	})
	if err != nil {
		return fmt.Errorf("strided %s: %w", path, err)
	}
	return printElements(elems)
}
