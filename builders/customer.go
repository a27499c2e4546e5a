// Package builders provides fluent test-data builders. Defaults are valid
// for the demo bank's registration form, and identity fields get a unique
// suffix so repeated runs against a shared target never collide.
package builders

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Customer is the registration payload a test drives through the UI.
type Customer struct {
	FirstName string
	LastName  string
	Street    string
	City      string
	State     string
	ZipCode   string
	Phone     string
	SSN       string
	Email     string
	Username  string
	Password  string
}

// CustomerBuilder builds Customers. Zero value is not usable; start from
// NewCustomer.
type CustomerBuilder struct {
	c Customer
}

// NewCustomer returns a builder seeded with a valid, unique customer.
func NewCustomer() *CustomerBuilder {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return &CustomerBuilder{c: Customer{
		FirstName: "Jane",
		LastName:  "Doe",
		Street:    "1431 Main St",
		City:      "Plano",
		State:     "TX",
		ZipCode:   "75001",
		Phone:     "2145550123",
		SSN:       "123456789",
		Email:     fmt.Sprintf("jane.%s@example.com", suffix),
		Username:  "jane_" + suffix,
		Password:  "s3cret-" + suffix,
	}}
}

func (b *CustomerBuilder) WithFirstName(v string) *CustomerBuilder { b.c.FirstName = v; return b }
func (b *CustomerBuilder) WithLastName(v string) *CustomerBuilder  { b.c.LastName = v; return b }
func (b *CustomerBuilder) WithStreet(v string) *CustomerBuilder    { b.c.Street = v; return b }
func (b *CustomerBuilder) WithCity(v string) *CustomerBuilder      { b.c.City = v; return b }
func (b *CustomerBuilder) WithState(v string) *CustomerBuilder     { b.c.State = v; return b }
func (b *CustomerBuilder) WithZipCode(v string) *CustomerBuilder   { b.c.ZipCode = v; return b }
func (b *CustomerBuilder) WithPhone(v string) *CustomerBuilder     { b.c.Phone = v; return b }
func (b *CustomerBuilder) WithSSN(v string) *CustomerBuilder       { b.c.SSN = v; return b }
func (b *CustomerBuilder) WithEmail(v string) *CustomerBuilder     { b.c.Email = v; return b }
func (b *CustomerBuilder) WithUsername(v string) *CustomerBuilder  { b.c.Username = v; return b }
func (b *CustomerBuilder) WithPassword(v string) *CustomerBuilder  { b.c.Password = v; return b }

// Build returns the customer value.
func (b *CustomerBuilder) Build() Customer {
	return b.c
}

// FormValues flattens the customer into the registration form's field names.
func (c Customer) FormValues() map[string]string {
	return map[string]string{
		"first_name":            c.FirstName,
		"last_name":             c.LastName,
		"street":                c.Street,
		"city":                  c.City,
		"state":                 c.State,
		"zip_code":              c.ZipCode,
		"phone":                 c.Phone,
		"ssn":                   c.SSN,
		"email":                 c.Email,
		"username":              c.Username,
		"password":              c.Password,
		"password_confirmation": c.Password,
	}
}
