package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/prathyushnallamothu/reactagent"
)

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// CurrencyExchange returns the conversion tool backed by the Frankfurter
// API (European Central Bank reference rates, no key required).
func CurrencyExchange(cfg *Config) reactagent.Tool {
	return reactagent.Tool{
		Name:        "get_currency_exchange",
		Description: "Converts currency amounts",
		Params:      []string{"from_currency", "to_currency", "amount"},
		Example:     `get_currency_exchange("USD", "EUR", 200)`,
		Execute: func(ctx context.Context, args []any) (string, error) {
			from, err := stringArg(args, 0, "from_currency")
			if err != nil {
				return "", err
			}
			to, err := stringArg(args, 1, "to_currency")
			if err != nil {
				return "", err
			}
			amount, err := optionalNumberArg(args, 2, "amount", 1.0)
			if err != nil {
				return "", err
			}
			if amount <= 0 {
				return "", fmt.Errorf("amount must be positive, got %s", FormatNumber(amount))
			}

			from = strings.ToUpper(from)
			to = strings.ToUpper(to)

			params := url.Values{}
			params.Set("from", from)
			params.Set("to", to)
			params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))

			var rates ratesResponse
			if err := getJSON(ctx, cfg.HTTPClient, cfg.CurrencyURL+"?"+params.Encode(), &rates); err != nil {
				return "", fmt.Errorf("currency error: %w", err)
			}

			converted, ok := rates.Rates[to]
			if !ok {
				return "", fmt.Errorf("currency error: no exchange rate for %s to %s", from, to)
			}

			rate := converted / amount
			return fmt.Sprintf("Exchange rate: 1 %s = %.4f %s. %s %s = %.2f %s",
				from, rate, to, FormatNumber(amount), from, converted, to), nil
		},
	}
}
