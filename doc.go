// Package stoich parses and balances chemical equations with exact rational
// arithmetic.
//
// 🚀 What is stoich?
//
//	A small, dependency-light pipeline:
//		• compound: "Fe2(SO4)3" → {Fe:2, S:3, O:12}
//		• reaction: "Fe + O2 = Fe2O3" → stoichiometric matrix
//		• balance : Gauss–Jordan elimination, GCD normalization, rendering
//
//	backed by:
//		• fraction: immutable exact rationals (math/big)
//		• matrix  : dense rational matrix + elimination kernels
//		• elements: element tables (built-in, JSON/YAML files)
//
// ✨ Around the core:
//
//	config/  : viper-based settings (.env, environment, flags)
//	logging/ : zap logger construction
//	store/   : SQLite-backed atom table
//	server/  : fiber HTTP API with CORS, request ids and Prometheus metrics
//	cmd/stoich: cobra CLI (balance, parse, serve, atoms)
//
// Quick example:
//
//	res, err := stoich.Balance("Fe + O2 -> Fe2O3", elements.Periodic())
//	// res.String() == "4Fe + 3O2 -> 2Fe2O3"
//
// Every call is independent and safe for concurrent use.
package stoich
