package domain

import "errors"

// ErrInvalidInput is returned when a caller-supplied array fails validation.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnknownAlgorithm is returned when an algorithm selector is not part of the catalog.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// ErrUnknownOrder is returned when a traversal order cannot be parsed.
var ErrUnknownOrder = errors.New("unknown traversal order")

// ErrNodeNotFound is returned when a graph operation references a missing node.
var ErrNodeNotFound = errors.New("node not found")

// ErrCapacityExceeded is returned when pushing onto a full stack or queue.
var ErrCapacityExceeded = errors.New("max capacity reached")

// ErrEmptyStructure is returned when popping from an empty stack or queue.
var ErrEmptyStructure = errors.New("structure is empty")

// ErrStepOutOfRange is returned when seeking outside a step sequence.
var ErrStepOutOfRange = errors.New("step index out of range")
