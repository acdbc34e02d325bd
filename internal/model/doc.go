// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the format-agnostic, in-memory representation of a
// feature roadmap: the features themselves and the directed dependency edges
// between them.
//
// # Core Concepts
//
// The model is built around two structures:
//
//   - Feature: a unit of work that can be built once its prerequisites are
//     satisfied. Each feature carries a priority and a complexity score that
//     later stages use as its scheduling weight.
//
//   - Dependency: a directed edge between two features, meaning the `From`
//     feature must (or should) be built before the `To` feature. Edges are
//     classified by type (technical, logical, business) and by strength
//     (required, recommended, optional), and may carry a confidence score
//     when they were proposed by an external suggestion service rather than
//     written by hand.
//
// Why a separate model package?
//
// This package acts as the intermediate layer between configuration formats
// and the planning engine. The HCL loader produces model values; the graph,
// cycle, leveling and planning packages consume them without ever touching a
// parser type. Keeping the model free of HCL lets the engine stay a pure
// function of its inputs and keeps alternative loaders possible.
package model
