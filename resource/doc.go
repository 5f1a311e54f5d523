// Package resource provides the handle arena backing the boundary's
// stateful resources.
//
// Resources are opaque handles to sandbox-owned state. The host side of
// the boundary only ever holds a Handle token, never a direct reference;
// there is no shared memory and no garbage collector spanning the two
// sides, so creation and destruction are explicit table operations.
//
// # Handle Table
//
// The Table maps integer handles to Go values:
//
//	table := resource.NewTable()
//
//	// Insert a value, get a handle
//	handle := table.Insert(typeID, myValue)
//
//	// Retrieve value by handle
//	value, ok := table.Get(handle)
//
//	// Remove and destroy (explicit drop)
//	value, ok := table.Remove(handle)
//
// # Generations
//
// Slots are reused after removal, so each slot carries a generation
// counter packed into the handle. A handle issued before a slot was
// dropped and reused no longer matches the slot's generation and is
// rejected, which turns use-after-drop into a clean lookup failure
// instead of stale-state access.
//
// # Type Safety
//
// Handles are typed - each resource type gets a unique type ID:
//
//	const DatabaseTypeID = 1
//	const StatementTypeID = 2
//
//	dbHandle := table.Insert(DatabaseTypeID, db)
//
//	value, ok := table.GetTyped(dbHandle, DatabaseTypeID)  // ok
//	value, ok := table.GetTyped(dbHandle, StatementTypeID) // !ok
//
// # Destructors and Observers
//
// Values implementing Dropper have Drop called exactly once when removed
// or when the table is closed. Observers receive Created/Dropped events
// for lifecycle diagnostics.
//
// Resources are not garbage collected; whoever created a handle must
// Remove it, or Close the table to release everything.
package resource
