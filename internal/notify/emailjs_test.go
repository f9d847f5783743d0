package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailJSSink_SendsExpectedPayload(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := NewEmailJSSink(srv.URL, "service_1", "template_1", "pub_key", time.Second)

	changes := []Change{
		{Field: "lastname", Old: "Doe", New: "Smith"},
		{Field: "password"},
	}
	err := sink.Send(context.Background(), Recipient{Name: "Jane", Email: "u@x.com"}, changes)
	require.NoError(t, err)

	assert.Equal(t, "service_1", got.ServiceID)
	assert.Equal(t, "template_1", got.TemplateID)
	assert.Equal(t, "pub_key", got.UserID)
	assert.Equal(t, "Jane", got.TemplateParams["to_name"])
	assert.Equal(t, "u@x.com", got.TemplateParams["to_email"])
	assert.Equal(t, "Last Name: Doe → Smith\nPassword was changed", got.TemplateParams["changes"])
	assert.Equal(t, "Last Name: Doe → Smith, Password was changed", got.TemplateParams["changes_html"])
}

func TestEmailJSSink_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("The user_id parameter is required"))
	}))
	defer srv.Close()

	sink := NewEmailJSSink(srv.URL, "s", "t", "", time.Second)

	err := sink.Send(context.Background(), Recipient{Name: "x", Email: "x@x.com"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "user_id parameter is required")
}

func TestNewEmailJSSink_EmptyEndpointUsesDefault(t *testing.T) {
	sink := NewEmailJSSink("", "s", "t", "k", 0)
	assert.Equal(t, DefaultEndpoint, sink.endpoint)
}
