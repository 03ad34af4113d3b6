package services

import (
	"fmt"
	"net/url"

	"github.com/anshmehta/stockwatch/internal/httperr"
	"github.com/gofiber/fiber/v2"
)

// QuoteProvider fetches a raw quote document for a symbol from the
// market-data provider. The body is passed through to clients verbatim.
type QuoteProvider interface {
	Quote(symbol string) ([]byte, error)
}

// TwelveData forwards symbol lookups to the Twelve Data quote API.
type TwelveData struct {
	baseURL string
	apiKey  string
}

func NewTwelveData(baseURL, apiKey string) *TwelveData {
	return &TwelveData{baseURL: baseURL, apiKey: apiKey}
}

// Quote performs the upstream lookup. No retries; a transport failure
// or non-200 upstream status is reported as an upstream error.
func (t *TwelveData) Quote(symbol string) ([]byte, error) {
	uri := fmt.Sprintf("%s/quote?symbol=%s&apikey=%s",
		t.baseURL, url.QueryEscape(symbol), url.QueryEscape(t.apiKey))

	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(fiber.MethodGet)
	req.SetRequestURI(uri)
	if err := agent.Parse(); err != nil {
		return nil, httperr.Wrap(httperr.KindUpstream, "error while getting current data", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, httperr.Wrap(httperr.KindUpstream, "error while getting current data", errs[0])
	}
	if code != fiber.StatusOK {
		return nil, httperr.New(httperr.KindUpstream, "error while getting current data")
	}
	return body, nil
}
