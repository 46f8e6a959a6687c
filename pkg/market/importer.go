package market

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"cropwise/entities"
)

var (
	ErrDomainNotAllowed = errors.New("domain not allowed")
	ErrPageTooLarge     = errors.New("page too large")
	ErrUnsupportedType  = errors.New("unsupported content-type")
	ErrNoRows           = errors.New("no price rows found")
	ErrFetch            = errors.New("fetch price page")
)

const DefaultMaxBytes = 1 << 20

// Fetcher downloads price pages from allow-listed hosts.
type Fetcher struct {
	Allow    map[string]bool
	MaxBytes int64
	Client   *http.Client
}

func NewFetcher(allowHosts []string) *Fetcher {
	allow := map[string]bool{}
	for _, h := range allowHosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			allow[h] = true
		}
	}
	f := &Fetcher{Allow: allow, MaxBytes: DefaultMaxBytes}
	f.Client = &http.Client{Timeout: 20 * time.Second, CheckRedirect: f.checkRedirect}
	return f
}

// checkRedirect holds every hop to the allow list.
func (f *Fetcher) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= 10 {
		return errors.New("stopped after 10 redirects")
	}
	if _, err := f.Allowed(req.URL.String()); err != nil {
		return err
	}
	return nil
}

func (f *Fetcher) Allowed(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("bad url %q", rawURL)
	}
	if !f.Allow[strings.ToLower(u.Host)] {
		return nil, ErrDomainNotAllowed
	}
	return u, nil
}

// Fetch returns the parsed price rows of the page at rawURL, each tagged
// with rawURL as its source.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]entities.MarketPrice, error) {
	u, err := f.Allowed(rawURL)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if errors.Is(err, ErrDomainNotAllowed) {
		return nil, ErrDomainNotAllowed
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}
	if resp.ContentLength > f.MaxBytes {
		return nil, ErrPageTooLarge
	}
	if ct := strings.ToLower(resp.Header.Get("Content-Type")); !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, ct)
	}
	limited := io.LimitedReader{R: resp.Body, N: f.MaxBytes + 1}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if int64(len(b)) > f.MaxBytes {
		return nil, ErrPageTooLarge
	}

	rows, err := ParseTable(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Source = rawURL
	}
	return rows, nil
}

// ParseTable reads <table> rows of the form crop | variety | price.
// Header rows and rows whose price does not parse are skipped.
func ParseTable(r io.Reader) ([]entities.MarketPrice, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	var out []entities.MarketPrice
	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 3 {
			return
		}
		crop := strings.ToLower(strings.TrimSpace(cells.Eq(0).Text()))
		variety := strings.ToLower(strings.TrimSpace(cells.Eq(1).Text()))
		price, ok := parsePrice(cells.Eq(2).Text())
		if crop == "" || variety == "" || !ok {
			return
		}
		out = append(out, entities.MarketPrice{Crop: crop, Variety: variety, PricePerKg: price})
	})
	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

// parsePrice accepts "350", "KES 1,250.50" and "KES 448/kg".
func parsePrice(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "kes")
	s = strings.TrimSuffix(s, "/kg")
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
