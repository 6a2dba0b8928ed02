// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treesteps records the step-by-step propagation of an operation
// through a hierarchy of nodes, capturing a snapshot of the hierarchy every
// time an operation starts, changes state, finishes, or a node is updated.
//
// # Basic Usage
//
// Every node in the hierarchy implements Node. A node reports a name, a list
// of properties and its children:
//
//	func (n *Node[T]) TreeStepsNode() treesteps.NodeInfo {
//	    info := treesteps.NodeInfof("%v", n.Value)
//	    info.AddChildren(n.Left, n.Right)
//	    return info
//	}
//
// Recording works as follows:
//
//  1. Start a recording with StartRecording() on the root node
//  2. For each operation on a node, call StartOpf() before and Finishf() after
//  3. Call NodeUpdated() whenever a node's state changes significantly
//  4. Call Finish() to obtain the recorded steps
//
// # Build Tags
//
// Recording is only available when building with the "invariants" tag.
// Without it every function is a no-op and Enabled is false, so callers can
// guard instrumentation with
//
//	if treesteps.Enabled && treesteps.IsRecording(node) {
//	    op := treesteps.StartOpf(node, "insert(%v)", v)
//	    defer op.Finishf("done")
//	}
//
// which is statically eliminated in regular builds.
package treesteps
