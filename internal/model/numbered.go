package model

// Numbered wraps a client with its 1-indexed position in the displayed list.
// Commands such as `edit 2 ...` and `delete 3` refer to these numbers.
type Numbered struct {
	// Num is the 1-indexed position for user reference.
	Num int `json:"num"`

	// Client is the underlying record.
	Client Client `json:"client"`
}

// NumberedList converts a slice of clients to numbered entries.
func NumberedList(clients []Client) []Numbered {
	result := make([]Numbered, len(clients))
	for i, c := range clients {
		result[i] = Numbered{
			Num:    i + 1, // 1-indexed
			Client: c,
		}
	}
	return result
}
