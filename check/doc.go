// Package check implements an offline consistency checker for the APFS
// catalog: the key-value tree holding every file and directory metadata
// record of a volume.
//
// The checker is strictly read-only and fail-fast. Records are fed one at
// a time into a Session, which decodes them against the on-disk format
// rules and accumulates its own view of the tree as it goes: how many
// directory entries point at each inode, how many children each directory
// has, how many bytes the extent records map for each data stream. Checks
// whose ground truth is only complete once the whole catalog has been
// consumed (link counts, child counts, declared size vs. mapped bytes)
// are deferred to Session.Finish.
//
// Any confirmed inconsistency is returned as a *CorruptionError and makes
// further reasoning about the tree unsafe; the checker never repairs.
package check
