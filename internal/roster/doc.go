// Package roster defines the friends roster data model and the pure selection
// logic applied to it before panels are built.
//
// # Criteria
//
// Three enumerations drive a render pass:
//
//   - Group: All, Online, Offline. Filter applies it as a predicate over Entity.Online.
//   - SortBy: Recent (last activity, newest first), Rank, Name.
//   - Style: Card, List, Brick. Style never affects filtering or ordering.
//
// # Ordering Rules
//
// Sort is always stable, so entities with equal keys keep their input order.
// Rank ordering puts every ranked entity first, ascending by rank, followed by
// the unranked ones. A missing rank is a separate bucket, not rank zero.
// Name ordering is a plain byte-wise comparison and is case-sensitive.
//
// All functions here are synchronous and free of side effects, so they are
// safe to call from the background build command.
package roster
