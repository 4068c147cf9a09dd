// Package worker contains the Worker aggregate: a tailor, cutter, or finisher
// employed by the shop.
//
// Worker aggregates carry their own running totals (work done, salary earned,
// advance paid out). These totals are not derived from order completion; they
// are updated through explicit RecordWork and RecordPayment calls, which keeps
// payroll corrections possible without touching order history.
package worker
