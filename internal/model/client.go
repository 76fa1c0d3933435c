package model

import "strings"

// Client is a single record in the client book.
type Client struct {
	// ID is the store's row identifier. Zero means "not yet stored".
	ID int64 `json:"id,omitempty"`

	Name    Name    `json:"name"`
	Phone   Phone   `json:"phone"`
	Email   Email   `json:"email"`
	Address Address `json:"address"`
}

// NewClient builds a client from already validated fields.
func NewClient(name Name, phone Phone, email Email, address Address) Client {
	return Client{Name: name, Phone: phone, Email: email, Address: address}
}

// IsSameClient reports whether two clients represent the same person.
// Identity is the exact name; other fields may differ.
func (c Client) IsSameClient(other Client) bool {
	return c.Name.Equal(other.Name)
}

// Equal reports whether all fields other than ID match.
func (c Client) Equal(other Client) bool {
	return c.Name.Equal(other.Name) &&
		c.Phone.Equal(other.Phone) &&
		c.Email.Equal(other.Email) &&
		c.Address.Equal(other.Address)
}

func (c Client) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name.String())
	sb.WriteString("; Phone: ")
	sb.WriteString(c.Phone.String())
	sb.WriteString("; Email: ")
	sb.WriteString(c.Email.String())
	sb.WriteString("; Address: ")
	sb.WriteString(c.Address.String())
	return sb.String()
}
