package apiclient_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexqa/bankwright/bankdemo"
	"github.com/apexqa/bankwright/builders"
	"github.com/apexqa/bankwright/framework/apiclient"
)

func newBank(t *testing.T) (*bankdemo.Server, *apiclient.Client) {
	t.Helper()
	bank := bankdemo.NewServer()
	ts := httptest.NewServer(bank)
	t.Cleanup(ts.Close)
	return bank, apiclient.New(ts.URL, 5*time.Second)
}

func TestClient_CreateCustomer(t *testing.T) {
	bank, client := newBank(t)
	form := builders.NewCustomer().WithUsername("seeded").Build().FormValues()

	got, err := client.CreateCustomer(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "seeded", got.Username)

	_, ok := bank.Store().Get("seeded")
	assert.True(t, ok)
}

func TestClient_CreateCustomer_ValidationRejected(t *testing.T) {
	_, client := newBank(t)
	form := builders.NewCustomer().WithZipCode("nope").Build().FormValues()

	_, err := client.CreateCustomer(context.Background(), form)
	assert.ErrorContains(t, err, "unexpected status 422")
}

func TestClient_GetCustomer(t *testing.T) {
	bank, client := newBank(t)
	require.NoError(t, bank.Store().Create(bankdemo.Customer{
		Username:  "alice",
		FirstName: "Alice",
		Email:     "alice@example.com",
	}))

	got, err := client.GetCustomer(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "Alice", got.FirstName)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestClient_GetCustomer_Unknown(t *testing.T) {
	_, client := newBank(t)

	_, err := client.GetCustomer(context.Background(), "nobody")
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestClient_DeleteCustomer(t *testing.T) {
	bank, client := newBank(t)
	require.NoError(t, bank.Store().Create(bankdemo.Customer{Username: "bob"}))

	require.NoError(t, client.DeleteCustomer(context.Background(), "bob"))
	assert.Equal(t, 0, bank.Store().Count())

	assert.Error(t, client.DeleteCustomer(context.Background(), "bob"))
}

func TestClient_Health(t *testing.T) {
	_, client := newBank(t)
	assert.NoError(t, client.Health(context.Background()))
}
