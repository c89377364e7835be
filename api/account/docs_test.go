package account

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	require.Equal(t, "Gearbox Account Service API", parsed.Info.Title)

	for _, p := range []string{"/register", "/verify", "/verify/resend", "/login", "/logout", "/token/refresh", "/me", "/reset/request", "/reset/confirm", "/livez", "/readyz"} {
		require.Contains(t, parsed.Paths, p)
	}
}
