package arrivals

import "fmt"

// BucketKind classifies an arrival relative to now
type BucketKind int

const (
	Unknown BucketKind = iota
	ImmediateArriving
	OneMinute
	NMinutes
	Delayed
)

func (k BucketKind) String() string {
	switch k {
	case ImmediateArriving:
		return "arriving"
	case OneMinute:
		return "one_minute"
	case NMinutes:
		return "n_minutes"
	case Delayed:
		return "delayed"
	default:
		return "unknown"
	}
}

// Bucket is a classified arrival. Minutes is meaningful for every kind but Unknown.
type Bucket struct {
	Kind    BucketKind
	Minutes int
}

// Classify maps a signed minute difference onto a bucket
func Classify(minutes int) Bucket {
	switch {
	case minutes == 1:
		return Bucket{Kind: OneMinute, Minutes: minutes}
	case minutes == 0:
		return Bucket{Kind: ImmediateArriving, Minutes: minutes}
	case minutes < 0:
		return Bucket{Kind: Delayed, Minutes: minutes}
	default:
		return Bucket{Kind: NMinutes, Minutes: minutes}
	}
}

func (b Bucket) String() string {
	if b.Kind == Unknown {
		return b.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", b.Kind, b.Minutes)
}
