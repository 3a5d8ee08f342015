package bidimap

import "fmt"

// DupAction is the action taken when a new item duplicates the key and/or value of
// items already in the [Map].
type DupAction uint8

const (
	// Fail rejects the new item with a duplication error.
	Fail DupAction = iota
	// Overwrite displaces the existing item(s) in favor of the new one.
	Overwrite
	// Keep retains the existing item(s) and silently drops the new one.
	Keep
)

func (a DupAction) String() string {
	switch a {
	case Fail:
		return "Fail"
	case Overwrite:
		return "Overwrite"
	case Keep:
		return "Keep"
	default:
		return fmt.Sprintf("DupAction(%d)", uint8(a))
	}
}

// OnDup bundles one [DupAction] per duplication scenario. The zero value fails on
// every kind of duplication, so an unset policy never destroys existing items.
//
// An item whose key and value both match a single existing item is always a no-op,
// regardless of policy.
type OnDup struct {
	// Key applies when only the new key duplicates an existing item.
	Key DupAction
	// Val applies when only the new value duplicates an existing item.
	Val DupAction
	// KV applies when the key and value each duplicate a different existing item.
	KV DupAction
}

// hasFail reports whether any slot can reject an item, which is what forces the
// batch driver to keep a rollback log.
func (d OnDup) hasFail() bool {
	return d.Key == Fail || d.Val == Fail || d.KV == Fail
}

var (
	// OnDupDefault mirrors plain map assignment for a duplicate key, but refuses to
	// silently break an existing association when the value is the duplicated side.
	OnDupDefault = OnDup{Key: Overwrite, Val: Fail, KV: Fail}
	// OnDupFail rejects every kind of duplication. This is also the zero value of [OnDup].
	OnDupFail = OnDup{Key: Fail, Val: Fail, KV: Fail}
	// OnDupOverwrite displaces existing items in every scenario and can never fail.
	OnDupOverwrite = OnDup{Key: Overwrite, Val: Overwrite, KV: Overwrite}
)
