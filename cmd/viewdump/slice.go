package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arrayview/internal/buf"
	"github.com/joshuapare/arrayview/internal/diag"
	"github.com/joshuapare/arrayview/view"
	"github.com/joshuapare/arrayview/view/mapped"
	"github.com/joshuapare/arrayview/view/policy"
)

var (
	sliceType  string
	sliceStart int
	sliceCount int
	sliceIndex int
)

func init() {
	cmd := newSliceCmd()
	cmd.Flags().StringVarP(&sliceType, "type", "t", "u8", "Element type")
	cmd.Flags().IntVar(&sliceStart, "start", 0, "Byte offset of the first element")
	cmd.Flags().IntVar(&sliceCount, "count", 0, "Number of elements (0 = to end of file)")
	cmd.Flags().IntVar(&sliceIndex, "index", -1, "Print only this element")
	rootCmd.AddCommand(cmd)
}

func newSliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice <file>",
		Short: "Print consecutive typed elements",
		Long: `The slice command views a run of the file as an array of one element type.

Example:
  viewdump slice samples.bin --type i32
  viewdump slice mesh.bin --type f32 --start 16 --count 12
  viewdump slice names.bin --type str:16 --index 3 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlice(args[0])
		},
	}
}

func runSlice(path string) error {
	c, err := parseType(sliceType)
	if err != nil {
		return err
	}

	f, err := mapped.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	b := f.Bytes()
	count := sliceCount
	if count == 0 && sliceStart < b.Len() {
		count = (b.Len() - sliceStart) / c.size
	}
	end, err := buf.CheckListBounds(b.Len(), sliceStart, count, c.size)
	if err != nil {
		return fmt.Errorf("slice %s: %w", path, err)
	}
	diag.Debug("viewing elements", "file", path, "type", c.name, "start", sliceStart, "end", end, "count", count)

	var elems []element
	err = policy.Catch(func() {
		values := c.elements(b.SliceN(sliceStart, count*c.size))
		elems = selectElements(values, sliceIndex)
	})
	if err != nil {
		return fmt.Errorf("slice %s: %w", path, err)
	}
	return printElements(elems)
}

// selectElements numbers values, or picks the single value at index when
// index is not negative.
func selectElements(values []any, index int) []element {
	if index >= 0 {
		return []element{{Index: index, Value: *view.FromSlice(values).At(index)}}
	}
	out := make([]element, len(values))
	for i, v := range values {
		out[i] = element{Index: i, Value: v}
	}
	return out
}
