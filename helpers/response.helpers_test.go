package helpers

import (
	"io/ioutil"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestOKResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/", OKResponse)

	res, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	b, err := ioutil.ReadAll(res.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"message":"Server is vibing!"}`, string(b))
}
