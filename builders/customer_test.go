package builders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apexqa/bankwright/builders"
)

func TestNewCustomer_UniquePerBuild(t *testing.T) {
	a := builders.NewCustomer().Build()
	b := builders.NewCustomer().Build()

	assert.NotEqual(t, a.Username, b.Username)
	assert.NotEqual(t, a.Email, b.Email)
}

func TestCustomerBuilder_OverridesStick(t *testing.T) {
	c := builders.NewCustomer().
		WithFirstName("John").
		WithUsername("johnny").
		WithZipCode("10001").
		Build()

	assert.Equal(t, "John", c.FirstName)
	assert.Equal(t, "johnny", c.Username)
	assert.Equal(t, "10001", c.ZipCode)
	assert.Equal(t, "Doe", c.LastName, "untouched defaults remain")
}

func TestCustomer_FormValues(t *testing.T) {
	c := builders.NewCustomer().WithUsername("mapped").Build()
	form := c.FormValues()

	assert.Equal(t, "mapped", form["username"])
	assert.Equal(t, c.Password, form["password"])
	assert.Equal(t, c.Password, form["password_confirmation"])
	assert.Len(t, form, 12)
}
