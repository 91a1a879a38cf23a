// Package models defines the core data types for Splitwizard.
//
// # Models
//
//   - Bill: one shared expense, recorded with its final (post-surcharge) amount and payer
//   - IndividualAmount: what one participant paid and what they need to pay
//   - IndividualAmounts: the per-participant totals, keyed by participant name
//   - Surcharge: the fixed set of tax/service multipliers a bill can carry
//   - Transfer: one simplified "who owes whom" payment
//   - PersonBalance: one row of the final settlement table
//
// Participants are identified by their display name only. The participant list
// is a plain []string owned by the wizard session.
//
// # Design Principles
//
// 1. **Decimal money**: every amount is a decimal.Decimal; rounding happens only when formatting
// 2. **Plain data**: types here carry invariants but no workflow behavior
// 3. **Stable wire format**: JSON tags match the persisted snapshots ("description", "amount", "paidBy")
package models
