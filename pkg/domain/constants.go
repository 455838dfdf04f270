package domain

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the array-based engines known to the dispatcher.
type Algorithm int

const (
	BubbleSort Algorithm = iota + 1
	MergeSort
	QuickSort
	InsertionSort
	SelectionSort
	StackOps
	QueueOps
)

// Algorithms lists every Algorithm in catalog order.
var Algorithms = []Algorithm{BubbleSort, MergeSort, QuickSort, InsertionSort, SelectionSort, StackOps, QueueOps}

var algorithmNames = map[Algorithm]string{
	BubbleSort:    "Bubble Sort",
	MergeSort:     "Merge Sort",
	QuickSort:     "Quick Sort",
	InsertionSort: "Insertion Sort",
	SelectionSort: "Selection Sort",
	StackOps:      "Stack Operations",
	QueueOps:      "Queue Operations",
}

// String returns the display name, e.g. "Bubble Sort".
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Slug returns the kebab-case form of the display name, e.g. "bubble-sort".
func (a Algorithm) Slug() string {
	return strings.ReplaceAll(strings.ToLower(a.String()), " ", "-")
}

// Valid reports whether a is a member of the enumeration.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// IsLinear reports whether a simulates a stack or queue rather than sorting.
func (a Algorithm) IsLinear() bool {
	return a == StackOps || a == QueueOps
}

// ParseAlgorithm accepts a display name ("Quick Sort"), a slug ("quick-sort")
// or the short form ("quick", "stack").
func ParseAlgorithm(s string) (Algorithm, error) {
	key := normalize(s)
	for _, a := range Algorithms {
		name := normalize(a.String())
		short := strings.Fields(strings.ToLower(a.String()))[0]
		if key == name || key == short {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText encodes the display name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText accepts anything ParseAlgorithm does.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// TraversalOrder selects the visit order of a tree traversal.
type TraversalOrder string

const (
	Inorder   TraversalOrder = "inorder"   // left, self, right
	Preorder  TraversalOrder = "preorder"  // self, left, right
	Postorder TraversalOrder = "postorder" // left, right, self
)

// Title returns the capitalised order name used in narration ("Inorder").
func (o TraversalOrder) Title() string {
	s := string(o)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseTraversalOrder validates an order name.
func ParseTraversalOrder(s string) (TraversalOrder, error) {
	switch o := TraversalOrder(normalize(s)); o {
	case Inorder, Preorder, Postorder:
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	return strings.ReplaceAll(s, " ", "-")
}
