/*
Package domain contains the core data model of the algotrace engine.

It defines the entities every engine produces or consumes: the Step snapshot,
the operation Counters, binary tree nodes and graph data. The package is kept
pure and free of I/O so engines, adapters and tests can share it.

# Key Entities

  - Step: one immutable frame of an algorithm run (array snapshot, highlighted
    indices, counters, narration, optional tree/graph overlay).
  - Counters: cumulative comparisons and swaps for one trace generation.
  - TreeNode: binary search tree node with stable identity and layout coordinates.
  - GraphData: nodes and weak edge references used by traversals.
  - Algorithm: the closed set of array-based algorithms the dispatcher knows.
*/
package domain
