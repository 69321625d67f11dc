package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"shipquote/pkg/rest"
)

const inquiry = "Ship from Paris to Berlin, weight 5kg, box 10x20x30 cm"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()

	var stdout, stderr bytes.Buffer

	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), err
}

func TestQuoteCmd(t *testing.T) {
	rq := require.New(t)

	out, err := execute(t, "", "quote", inquiry)
	rq.NoError(err)

	var response rest.QuoteResponse

	rq.NoError(json.Unmarshal([]byte(out), &response))
	rq.True(response.Success)
	rq.Equal("Paris", response.Extraction.SourceAddress)
	rq.Equal("Berlin", response.Extraction.DestinationAddress)
	rq.Equal(map[string]string{"DHL": "$50.6", "FedEx": "$60.6", "UPS": "$70.6"}, response.Quotes)
}

func TestQuoteCmdInputs(t *testing.T) {
	file := filepath.Join(t.TempDir(), "inquiry.txt")
	require.NoError(t, os.WriteFile(file, []byte(inquiry), 0o600))

	testCases := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "Stdin", stdin: inquiry, args: []string{"quote"}},
		{name: "File", args: []string{"quote", "--file", file}},
		{name: "Split arguments", args: append([]string{"quote"}, strings.Fields(inquiry)...)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			out, err := execute(t, tc.stdin, tc.args...)
			rq.NoError(err)

			var response rest.QuoteResponse

			rq.NoError(json.Unmarshal([]byte(out), &response))
			rq.Equal("$50.6", response.Quotes["DHL"])
		})
	}
}

func TestQuoteCmdYAML(t *testing.T) {
	rq := require.New(t)

	out, err := execute(t, "", "quote", "-o", "yaml", inquiry)
	rq.NoError(err)

	var response rest.QuoteResponse

	rq.NoError(yaml.Unmarshal([]byte(out), &response))
	rq.Equal("Paris", response.Extraction.SourceAddress)
	rq.Equal("cm", response.Extraction.Package.Dimensions.Unit)
	rq.Equal("$70.6", response.Quotes["UPS"])
}

func TestQuoteCmdErrors(t *testing.T) {
	testCases := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{name: "Empty stdin", args: []string{"quote"}, wantErr: "Email text is required"},
		{name: "Incomplete", args: []string{"quote", "Paris to Berlin"}, wantErr: "Could not extract all required information"},
		{name: "Unknown output", args: []string{"quote", "-o", "xml", inquiry}, wantErr: `unknown output format "xml"`},
		{name: "Arguments and file", args: []string{"quote", "-f", "x.txt", inquiry}, wantErr: "either as arguments or with --file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.stdin, tc.args...)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestQuoteCmdServer(t *testing.T) {
	rq := require.New(t)

	var gotText string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request rest.QuoteRequest
		_ = json.NewDecoder(r.Body).Decode(&request)
		gotText = request.Text

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"quotes":{"DHL":"$1"}}`))
	}))
	defer srv.Close()

	out, err := execute(t, "", "quote", "--server", srv.URL, inquiry)
	rq.NoError(err)
	rq.Equal(inquiry, gotText)

	var response rest.QuoteResponse

	rq.NoError(json.Unmarshal([]byte(out), &response))
	rq.Equal("$1", response.Quotes["DHL"])
}

func TestVersionCmd(t *testing.T) {
	rq := require.New(t)

	out, err := execute(t, "", "version")
	rq.NoError(err)
	rq.Contains(out, "gitVersion:")

	out, err = execute(t, "", "version", "-o", "json")
	rq.NoError(err)
	rq.Contains(out, `"goVersion"`)

	out, err = execute(t, "", "version", "-o", "yaml")
	rq.NoError(err)
	rq.Contains(out, "goVersion:")

	_, err = execute(t, "", "version", "-o", "xml")
	rq.Error(err)
}
