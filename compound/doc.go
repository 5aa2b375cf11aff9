// Package compound parses a single chemical formula into element counts.
//
// 🚀 What does it do?
//
//	Parse("Fe2(SO4)3", table) → {Fe: 2, S: 3, O: 12}
//
//	One left-to-right pass over the formula with an explicit stack of
//	per-depth frames. Each frame alternates between element mode (expect a
//	symbol) and multiplier mode (expect an optional count for the previous
//	element or group).
//
// ✨ Key features:
//   - nested groups of any depth: Ca3(PO4)2, K4(Fe(CN)6)
//   - greedy longest-match symbols (3, 2, then 1 characters) against any
//     elements.Table
//   - counts keep first-seen order, so downstream matrices are deterministic
//   - typed errors: unbalanced parentheses, unknown symbols, empty formulas
//
// ⚙️ Options:
//
//	compound.WithLogger(l)            // warn on ignored leading multipliers
//	compound.WithStrictMultipliers()  // reject them instead
//
// A leading multiplier inside a group, as in "(2H2O)", is not supported and
// is ignored by default.
package compound
