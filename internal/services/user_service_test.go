package services

import (
	"path/filepath"
	"testing"

	"branded_clothing_shop/internal/database"
	"branded_clothing_shop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	file, err := database.OpenJSONFile[models.User](filepath.Join(t.TempDir(), database.UsersFile))
	require.NoError(t, err)
	return NewUserService(file)
}

func TestUserService_Register(t *testing.T) {
	svc := newUserService(t)

	u, err := svc.Register(models.User{Email: " olena@shop.ua ", Password: "secret", FullName: "Олена"})
	require.NoError(t, err)
	assert.Equal(t, "olena@shop.ua", u.Email)
	assert.Equal(t, models.DefaultCountry, u.Country)
	assert.False(t, u.CreatedDate.IsZero())

	_, err = svc.Register(models.User{Email: "OLENA@shop.ua", Password: "x", FullName: "Інша"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_RegisterRequiresFields(t *testing.T) {
	svc := newUserService(t)

	for _, u := range []models.User{
		{Password: "p", FullName: "n"},
		{Email: "e@x.ua", FullName: "n"},
		{Email: "e@x.ua", Password: "p", FullName: "   "},
		{Email: "e@x.ua", Password: "  \t ", FullName: "n"},
	} {
		_, err := svc.Register(u)
		assert.ErrorIs(t, err, ErrMissingField)
	}
}

func TestUserService_RegisterKeepsPasswordAsTyped(t *testing.T) {
	svc := newUserService(t)

	u, err := svc.Register(models.User{Email: "e@x.ua", Password: " pa ss ", FullName: "n"})
	require.NoError(t, err)
	assert.Equal(t, " pa ss ", u.Password)

	_, err = svc.Authenticate("e@x.ua", " pa ss ")
	assert.NoError(t, err)
	_, err = svc.Authenticate("e@x.ua", "pa ss")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Authenticate(t *testing.T) {
	svc := newUserService(t)
	_, err := svc.Register(models.User{Email: "ivan@shop.ua", Password: "Pa55", FullName: "Іван"})
	require.NoError(t, err)

	u, err := svc.Authenticate("IVAN@shop.ua", "Pa55")
	require.NoError(t, err)
	assert.Equal(t, "Іван", u.FullName)

	_, err = svc.Authenticate("ivan@shop.ua", "pa55")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("nobody@shop.ua", "Pa55")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_UpdateProfileKeepsCredentials(t *testing.T) {
	svc := newUserService(t)
	_, err := svc.Register(models.User{Email: "ivan@shop.ua", Password: "Pa55", FullName: "Іван"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(models.User{
		Email:       "Ivan@Shop.ua",
		Password:    "hijacked",
		FullName:    "Іван Петренко",
		PhoneNumber: "+380671234567",
		Address:     "вул. Шевченка 5",
		City:        "Львів",
		PostalCode:  "79000",
		Country:     "Ukraine",
	})
	require.NoError(t, err)
	assert.Equal(t, "Львів", updated.City)

	u, err := svc.Authenticate("ivan@shop.ua", "Pa55")
	require.NoError(t, err)
	assert.Equal(t, "Іван Петренко", u.FullName)
	assert.Equal(t, "ivan@shop.ua", u.Email)

	_, err = svc.UpdateProfile(models.User{Email: "ghost@shop.ua"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_RecordView(t *testing.T) {
	svc := newUserService(t)
	_, err := svc.Register(models.User{Email: "ivan@shop.ua", Password: "p", FullName: "Іван"})
	require.NoError(t, err)

	for _, id := range []int{1, 2, 3, 1} {
		require.NoError(t, svc.RecordView("ivan@shop.ua", id))
	}
	u, err := svc.User("ivan@shop.ua")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, u.ViewedProductIds)

	for id := 100; id < 130; id++ {
		require.NoError(t, svc.RecordView("ivan@shop.ua", id))
	}
	u, err = svc.User("ivan@shop.ua")
	require.NoError(t, err)
	assert.Len(t, u.ViewedProductIds, MaxViewedProducts)
	assert.Equal(t, 129, u.ViewedProductIds[0])

	assert.ErrorIs(t, svc.RecordView("ghost@shop.ua", 1), ErrUserNotFound)
}
