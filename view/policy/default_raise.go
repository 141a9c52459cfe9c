//go:build arrayview_raise

package policy

func defaultPolicy() Policy { return Raise{} }
