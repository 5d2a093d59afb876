package common

// BookAction classifies an order-book update.
type BookAction int

const (
	BookActionAdd BookAction = iota
	BookActionUpdate
	BookActionDelete
)

func (a BookAction) String() string {
	switch a {
	case BookActionAdd:
		return "ADD"
	case BookActionUpdate:
		return "UPDATE"
	case BookActionDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}
