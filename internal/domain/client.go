package domain

import (
	"fmt"
	"strings"
)

// Client is the customer who commissions a project.
type Client struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email"`
	Phone string `json:"phone,omitempty" yaml:"phone"`
}

// NewClient validates and returns a client.
func NewClient(name, email, phone string) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("client: %w", ErrEmptyName)
	}
	return &Client{Name: name, Email: email, Phone: phone}, nil
}

// UpdateEmail replaces the contact email.
func (c *Client) UpdateEmail(email string) { c.Email = email }

// UpdatePhone replaces the contact phone.
func (c *Client) UpdatePhone(phone string) { c.Phone = phone }

// String formats the client as "name (email - phone)".
func (c *Client) String() string {
	return fmt.Sprintf("%s (%s - %s)", c.Name, c.Email, c.Phone)
}
