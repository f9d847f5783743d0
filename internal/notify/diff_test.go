package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow-app/taskflow/internal/models"
)

func baseAccount() models.Account {
	return models.Account{
		Email:     "u@x.com",
		Password:  "Abc123!",
		Username:  "user",
		Firstname: "Jane",
		Lastname:  "Doe",
		Birthdate: "01.01.2000",
	}
}

func TestDiff_NoChanges(t *testing.T) {
	assert.Empty(t, Diff(baseAccount(), baseAccount()))
}

func TestDiff_SingleFieldChange(t *testing.T) {
	updated := baseAccount()
	updated.Lastname = "Smith"

	changes := Diff(baseAccount(), updated)
	require.Len(t, changes, 1)
	assert.Equal(t, "Last Name: Doe → Smith", changes[0].String())
}

func TestDiff_OrderMatchesEmailLayout(t *testing.T) {
	updated := baseAccount()
	updated.Username = "user2"
	updated.Email = "new@x.com"
	updated.Birthdate = "02.02.2002"
	updated.Password = "Xyz789!"

	changes := Diff(baseAccount(), updated)
	require.Len(t, changes, 4)
	assert.Equal(t, "username", changes[0].Field)
	assert.Equal(t, "email", changes[1].Field)
	assert.Equal(t, "birthdate", changes[2].Field)
	assert.Equal(t, "password", changes[3].Field)
}

func TestDiff_PasswordChangeCarriesNoValues(t *testing.T) {
	updated := baseAccount()
	updated.Password = "Xyz789!"

	changes := Diff(baseAccount(), updated)
	require.Len(t, changes, 1)
	assert.Empty(t, changes[0].Old)
	assert.Empty(t, changes[0].New)
	assert.Equal(t, "Password was changed", changes[0].String())
}
