/*
Package bidimap provides a bidirectional map: a dictionary-like structure that keeps
forward (key → value) and inverse (value → key) views in sync, with both keys and
values guaranteed unique.

Writes go through a per-scenario duplication policy ([OnDup]): a new item may
duplicate an existing key, an existing value, or both at once against two different
items, and each scenario can independently fail, overwrite, or keep the existing
items. Bulk updates under a policy that can fail are atomic: if any item is rejected
partway through, every item already applied is undone and the map is left exactly as
it was before the call.

The inverse view returned by [Map.Inverse] shares its backing stores with the
originating [Map], so a mutation through either is visible through both.

A Map is not safe for concurrent use.
*/
package bidimap
