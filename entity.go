package necs

// Entity is a bare integer id identifying a logical entity.
//
// Allocating, recycling and version-tagging ids is the caller's concern;
// this package only requires that every id handed to a SparseSet stays
// below that set's sparse capacity. The Tombstone value is reserved and
// never usable as an id.
type Entity uint32
