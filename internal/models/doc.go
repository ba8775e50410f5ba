// Package models defines the core domain models for Splitledger.
//
// # Models
//
//   - Expense: one shared cost event with an amount, a date and participants
//   - Participant: a named party of an expense with a paid flag and, for
//     custom splits, an explicit share
//   - User: a registered account allowed to use the API
//
// Participants are identified by name strings. Two participants with the
// same name on different expenses are the same person for every balance
// and report computed by the calculator package.
//
// # Design Principles
//
//  1. Money is decimal.Decimal so sums are exact and independent of order
//  2. Missing or unknown enum values are normalized, never rejected
//     (see ParseStatus and ParseSplitType)
//  3. Relationships use ID strings instead of pointers
package models
