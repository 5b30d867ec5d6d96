package domain

// Currency a currency code
type Currency string

const (
	USD Currency = "USD"
	KRW Currency = "KRW"
	JPY Currency = "JPY"
)

// Currencies returns every supported currency code.
func Currencies() []Currency {
	return []Currency{USD, KRW, JPY}
}

// Valid reports whether c is one of the supported currency codes.
func (c Currency) Valid() bool {
	for _, known := range Currencies() {
		if c == known {
			return true
		}
	}
	return false
}

// Amount a monetary amount, may be negative or fractional
type Amount float64

// Rate an exchange rate: 1 unit of a source currency equals Rate units of the target
type Rate float64

// ExchangeRate is one entry of an exchange table, keyed elsewhere by its source currency.
// Ratios are rounded to 5 decimal places.
type ExchangeRate struct {
	Target Currency
	Ratio  Rate
}

// Money an amount in a currency. Operations return new values and never modify their operands.
type Money struct {
	Amount   Amount   `json:"amount"`
	Currency Currency `json:"currency"`
}

// New constructs Money in an arbitrary currency.
func New(amount Amount, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Dollar constructs Money in USD.
func Dollar(amount Amount) Money {
	return New(amount, USD)
}

// Won constructs Money in KRW.
func Won(amount Amount) Money {
	return New(amount, KRW)
}

// Yen constructs Money in JPY.
func Yen(amount Amount) Money {
	return New(amount, JPY)
}
