// Package labs is a small toolkit for the Low Autocorrelation Binary
// Sequence (LABS) problem: scoring ±1 sequences, describing their
// coupling structure, and establishing ground truth by exhaustive
// search.
//
// 🚀 What is labs?
//
//	A deterministic, dependency-light library that brings together:
//		• Sequences: ±1 spin vectors with flip/reverse transforms,
//		  seeded random sampling and lazy exhaustive enumeration
//		• Energy: the LABS objective E(s) = Σₖ cₖ², autocorrelation
//		  spectra and merit factors
//		• Interactions: 2-body and 4-body coupling index sets
//		• Brute force: the 2ᴺ ground-truth oracle, serial or sharded
//		  across workers, used to validate heuristic solvers
//		• Catalog: an optional SQLite record of known optima
//
// ✨ Why choose labs?
//
//   - Deterministic – explicit seeds, stable tie-breaks, no globals
//   - Exact – int64 energies, no floating-point drift
//   - Pure functions – no logging, no panics on user input, sentinel errors
//
// Everything is organized under flat subpackages:
//
//	sequence/     — Sequence type, transforms, RNG, enumeration
//	energy/       — LABS energy, autocorrelation spectrum, merit factor
//	interactions/ — G2 (pair) and G4 (quad) coupling index sets
//	bruteforce/   — exhaustive ground-truth search over all 2ᴺ spins
//	catalog/      — SQLite store of best-known configurations
//	cmd/labsctl/  — command line front end for search and scoring
//
// Quick numeric example, N=5:
//
//	s = [+1 −1 +1 −1 +1]
//	c₁=−4, c₂=3, c₃=−2, c₄=1  ⇒  E = 16+9+4+1 = 30
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/labs
package labs
