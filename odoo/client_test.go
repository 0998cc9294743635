// api/odoo/client_test.go
package odoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/policy"
)

// fakeERP mimics the ERP's XML-RPC read semantics: the response carries only
// the fields the request asked for, never the whole record.
func fakeERP(t *testing.T, record map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		request := string(body)

		var members strings.Builder
		members.WriteString("<member><name>id</name><value><int>17</int></value></member>")
		for name, value := range record {
			if !strings.Contains(request, "<string>"+name+"</string>") {
				continue
			}
			fmt.Fprintf(&members, "<member><name>%s</name><value>%s</value></member>", name, value)
		}

		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprintf(w, `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><struct>%s</struct></value>
</data></array></value></param></params></methodResponse>`, members.String())
	}))
}

func setupClientTest(t *testing.T, url string) *Client {
	t.Helper()
	logger.InitLogger(t.TempDir())
	viper.Set("odoo.url", url)
	viper.Set("odoo.db", "test")
	viper.Set("odoo.password", "service-pw")

	client, err := NewClient()
	require.NoError(t, err)
	return client
}

func TestGetUserInfoCarriesAccountState(t *testing.T) {
	server := fakeERP(t, map[string]string{
		"name":   "<string>Bob</string>",
		"login":  "<string>bob</string>",
		"email":  "<string>bob@example.com</string>",
		"active": "<boolean>0</boolean>",
	})
	defer server.Close()
	client := setupClientTest(t, server.URL)

	info, err := client.GetUserInfo(context.Background(), 17)
	require.NoError(t, err)
	require.NotNil(t, info)

	// A deactivated ERP account must come through as inactive end to end,
	// which requires the account-state field to be part of the read.
	principal := model.NewExternalPrincipal(17, info)
	assert.False(t, principal.IsActive())
	assert.ErrorIs(t, policy.RequireActive(principal), gw_errors.ErrInactiveAccount)
}

func TestGetUserInfoCarriesRoleLabel(t *testing.T) {
	server := fakeERP(t, map[string]string{
		"name":   "<string>Bob</string>",
		"login":  "<string>bob</string>",
		"active": "<boolean>1</boolean>",
		"role":   "<string>Admin</string>",
	})
	defer server.Close()
	client := setupClientTest(t, server.URL)

	info, err := client.GetUserInfo(context.Background(), 17)
	require.NoError(t, err)
	require.NotNil(t, info)

	principal := model.NewExternalPrincipal(17, info)
	assert.True(t, principal.IsActive())
	assert.True(t, principal.IsElevated())
}

func TestGetUserInfoTransportFailure(t *testing.T) {
	server := fakeERP(t, nil)
	client := setupClientTest(t, server.URL)
	server.Close()

	_, err := client.GetUserInfo(context.Background(), 17)
	assert.ErrorIs(t, err, gw_errors.ErrIdentityUnavailable)
}
