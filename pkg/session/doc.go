/*
Package session orchestrates concurrent access to the puzzle archive.

It wraps a ports.PuzzleStore with per-puzzle locking so simultaneous writers
on one puzzle are serialized, integrating reference-counted local locks with
optional distributed locking for multi-replica deployments.
*/
package session
