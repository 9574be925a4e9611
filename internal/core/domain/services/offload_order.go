package services

// OffloadOrder decides how PackagesForOffloading sorts by creation time.
type OffloadOrder string

const (
	OldestFirst OffloadOrder = "oldest_first"
	NewestFirst OffloadOrder = "newest_first"
)

// ParseOffloadOrder accepts "oldest_first" and "newest_first".
func ParseOffloadOrder(s string) (OffloadOrder, bool) {
	switch OffloadOrder(s) {
	case OldestFirst, NewestFirst:
		return OffloadOrder(s), true
	default:
		return "", false
	}
}

func (o OffloadOrder) String() string {
	return string(o)
}
