// Command viewdump prints typed elements or record fields of a binary file
// through zero-copy views over a memory mapping.
package main

import "github.com/joshuapare/arrayview/view/policy"

func main() {
	// Contract violations become command errors instead of aborting.
	policy.Set(policy.Raise{})
	execute()
}
