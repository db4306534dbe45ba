// Package pcmgen generates parity-check matrices (PCMs) for rotated planar
// surface codes and serializes them as flat CSV files for downstream decoders.
//
// 🚀 What is pcmgen?
//
//	A small, deterministic toolkit that brings together:
//		• Code construction: d×d rotated planar lattices and their stabilizers
//		• Symplectic algebra: commutation checks over binary symplectic rows
//		• Serialization: integer CSV writing/reading with exact round-trips
//		• A batch driver: one PCM file per configured code distance
//
// ✨ Why choose pcmgen?
//
//   - Deterministic – identical inputs always produce byte-identical files
//   - Fail-fast – the first construction or I/O error aborts the run
//   - Pure Go – the stabilizer derivation lives here, no external codegen
//
// Under the hood, everything is organized under four subpackages:
//
//	rotatedplanar/ — lattice geometry, plaquette enumeration, stabilizer rows
//	symplectic/    — binary symplectic products and validation
//	pcmio/         — CSV serialization of integer matrices
//	gen/           — the distance-sweep driver and its configuration
//
// Quick ASCII example (distance 3, sites ● and plaquettes ▢/▣):
//
//	    ●───●───●
//	    │ ▣ │ ▢ │
//	    ●───●───●
//	    │ ▢ │ ▣ │
//	    ●───●───●
//
//	nine data qubits, eight stabilizer generators, one logical qubit.
//
// The pcmgen binary under cmd/pcmgen sweeps distances {3,5,7,9,11,13,15}
// by default and writes pcm_matrices/distance_<d>_surface_code.csv for each.
//
//	go get github.com/topoqec/pcmgen
package pcmgen
