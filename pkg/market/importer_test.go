package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pricePage = `<html><body>
<table>
  <tr><th>Crop</th><th>Variety</th><th>Price</th></tr>
  <tr><td> Cabbage </td><td>Green</td><td>KES 365/kg</td></tr>
  <tr><td>Kale</td><td>Sukuma</td><td>1,120.5</td></tr>
  <tr><td>Kale</td><td>Curly</td><td>n/a</td></tr>
  <tr><td>Spinach</td><td>local</td></tr>
</table></body></html>`

func TestParseTable(t *testing.T) {
	rows, err := ParseTable(strings.NewReader(pricePage))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "cabbage", rows[0].Crop)
	assert.Equal(t, "green", rows[0].Variety)
	assert.Equal(t, 365.0, rows[0].PricePerKg)
	assert.Equal(t, 1120.5, rows[1].PricePerKg)

	_, err = ParseTable(strings.NewReader("<p>no table</p>"))
	assert.ErrorIs(t, err, ErrNoRows)
}

func newFetcher(t *testing.T, h http.HandlerFunc) (*Fetcher, string) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	u, _ := url.Parse(srv.URL)
	return NewFetcher([]string{" " + strings.ToUpper(u.Host) + " "}), srv.URL
}

func TestFetch(t *testing.T) {
	f, base := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, pricePage)
	})

	rows, err := f.Fetch(context.Background(), base+"/prices")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, base+"/prices", rows[0].Source)

	_, err = f.Fetch(context.Background(), "https://elsewhere.example.com/prices")
	assert.ErrorIs(t, err, ErrDomainNotAllowed)

	_, err = f.Fetch(context.Background(), "ftp://"+strings.TrimPrefix(base, "http://"))
	assert.Error(t, err)
}

func TestFetchFollowsOnlyAllowedRedirects(t *testing.T) {
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, pricePage)
	}))
	t.Cleanup(other.Close)

	f, base := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/away":
			http.Redirect(w, r, other.URL+"/prices", http.StatusFound)
		case "/moved":
			http.Redirect(w, r, "/prices", http.StatusMovedPermanently)
		default:
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, pricePage)
		}
	})

	rows, err := f.Fetch(context.Background(), base+"/away")
	assert.ErrorIs(t, err, ErrDomainNotAllowed)
	assert.Empty(t, rows)

	rows, err = f.Fetch(context.Background(), base+"/moved")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestFetchRejects(t *testing.T) {
	f, base := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{}`)
		case "/big":
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, strings.Repeat("x", 64))
		default:
			http.NotFound(w, r)
		}
	})
	f.MaxBytes = 32

	_, err := f.Fetch(context.Background(), base+"/json")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = f.Fetch(context.Background(), base+"/big")
	assert.ErrorIs(t, err, ErrPageTooLarge)

	_, err = f.Fetch(context.Background(), base+"/missing")
	assert.ErrorIs(t, err, ErrFetch)
}
