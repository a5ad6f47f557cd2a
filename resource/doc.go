// Package resource provides the handle table behind ownership-transfer codecs.
//
// A resource is a value that must have exactly one owner at a time. The
// Table plays the role of the foreign allocator: values live in it and are
// addressed by pointer-sized handles that can be written into a bridge
// buffer. Handle 0 is reserved, so a zero handle read from a buffer always
// means the producer failed to allocate.
//
// # Ownership Transfer
//
//	table := resource.NewTable()
//
//	// Producer side
//	file, _ := resource.New(table, openFile())
//	h := file.Release() // file no longer owns anything
//
//	// Consumer side
//	owner, ok := resource.Adopt[*os.File](table, h)
//	defer owner.Drop()
//
// Between Release and Adopt the entry stays in the table; nothing is
// dropped. Drop on a released owner is a no-op, so the producer cannot
// destroy a value it has given away.
//
// # Observers
//
// Register observers to track resource lifecycle events:
//
//	table.Subscribe(observer)
//	// EventCreated on Insert, EventDropped on Remove, EventTaken on Take
//
// # Memory Management
//
// Resources are not garbage collected while their handle is live. Every
// handle must end in Remove (via Owned.Drop) or Take, or the table must be
// closed. Close runs Dropper.Drop on everything still held.
package resource
