package config

import (
	"github.com/dshills/snipstorm/internal/snippet/dispatch"
)

// Apply registers a file's snippets into a dispatch table in file order.
// Because registration prepends, a snippet later in the file shadows an
// earlier one with the same mode and trigger, matching the "last
// definition wins" reading users expect from a config file.
//
// Snippets with an empty mode register under defaultMode.
func Apply(f *File, table *dispatch.Table, defaultMode string) error {
	if f == nil {
		return nil
	}
	for _, sn := range f.Snippets {
		cond, err := ParseCondition(sn.Condition)
		if err != nil {
			return err
		}
		mode := sn.Mode
		if mode == "" {
			mode = defaultMode
		}
		table.Register(mode, sn.Trigger, cond, sn.Template)
	}
	return nil
}
