// Package order contains the Order aggregate: the record of a single tailoring
// order from intake through delivery.
//
// The aggregate owns three append-only histories:
//   - the timeline, auditing every status change
//   - the payment history, auditing every payment collected
//
// and enforces the ledger invariant that the outstanding due amount always
// equals the total amount minus the advance paid. The due amount is never
// stored; it is derived on read.
//
// Status transitions are deliberately unconstrained: any status may follow any
// other, trading strict workflow enforcement for operational flexibility.
// Cancelled is terminal by convention only.
package order
