package julienne

import "math"

// Id identifies an object being bucketed — e.g. a vertex number in a graph
// algorithm. BucketSet never creates ids; it only ever stores and returns
// ones the caller already owns.
type Id = uint32

// Bkt is the single unsigned type shared by priorities, bucket numbers, and
// slot indices — a raw priority, a bucket number, and a slot index are all
// interchangeable representations of the same window-relative quantity.
type Bkt = uint32

// NullBkt is the sentinel meaning "not in any bucket". It is returned by a
// PriorityFunc for an id that isn't currently bucketed, and internally
// marks "drop this entry" and "this priority lies outside the window".
const NullBkt Bkt = math.MaxUint32

// Order selects the direction NextBucket walks the priority space in.
type Order int

const (
	// Increasing yields buckets from the lowest priority to the highest.
	Increasing Order = iota
	// Decreasing yields buckets from the highest priority to the lowest.
	Decreasing
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "unknown"
	}
}

// PriorityFunc returns the current priority (bucket number) of an id, or
// NullBkt if the id is not currently in any bucket. It is pure from
// BucketSet's point of view and may be called concurrently from multiple
// goroutines during construction and during the emission-time filter.
type PriorityFunc func(Id) Bkt

// UpdateFunc supplies the j'th entry of a bulk update: the identifier, its
// destination slot, and whether the entry exists at all. An entry with
// ok == false or slot == NullBkt is dropped by UpdateBuckets.
type UpdateFunc func(j int) (id Id, slot Bkt, ok bool)
