// Package models defines the core domain models for groupledger.
//
// # Models
//
//   - Group: a named, fixed list of members sharing expenses
//   - Member: a person belonging to exactly one group
//   - Entry: an append-only ledger record (expense or payment)
//   - MemberBalance: one member's net position derived from the ledger
//
// Groups are seeded at startup and never change afterwards. Entries are
// written once and never edited or removed.
//
// # Sign convention
//
// A negative balance means the member is owed money (net creditor). A positive
// balance means the member owes money (net debtor).
//
// # Design Principles
//
// 1. **Integer ids**: groups and members are identified by positive int64 ids
// 2. **Exact money**: amounts are decimal values with cent precision, never floats
// 3. **Avoid circular references**: entries reference groups and members by id
package models
