// Package models defines the core domain models for the Pool Service.
//
// # Models
//
//   - Pool: an expense-sharing request raised by a creator against a set of
//     participants (the borrowers)
//   - Dashboard: aggregated owed/due totals plus recent activity for one user
//   - FriendBalance: signed net balance between two users
//
// # Design Principles
//
// 1. **Money is decimal**: all amounts are shopspring decimals, never floats.
// 2. **Immutability after creation**: title, amounts, participant set and the
// derived AmountOwed are fixed when a pool is created; only Status and
// UpdatedAt change afterwards.
// 3. **Avoid circular references**: pools carry user and chat IDs as strings;
// user profiles and chats are owned by other services.
package models
