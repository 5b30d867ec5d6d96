package exchange

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"

	"go-money/domain"
)

func newTestService(buf *bytes.Buffer) Service {
	return NewService(DefaultTable.Lookup, log.NewLogfmtLogger(buf))
}

func TestService_Add(t *testing.T) {
	tests := []struct {
		name string
		lhs  domain.Money
		rhs  domain.Money
		want domain.Money
	}{
		{"same currency", domain.Dollar(4), domain.Dollar(4), domain.Dollar(8)},
		{"krw into usd", domain.Won(1000), domain.Dollar(4), domain.Dollar(5)},
		{"usd into krw", domain.Dollar(4), domain.Won(1000), domain.Won(5000)},
		{"jpy into krw", domain.Yen(200), domain.Won(1000), domain.Won(3000)},
		{"negative amounts", domain.Won(-2000), domain.Dollar(1), domain.Dollar(-1)},
		{"fractional same currency", domain.Yen(0.5), domain.Yen(0.25), domain.Yen(0.75)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := newTestService(&buf)

			got := s.Add(tt.lhs, tt.rhs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Add() got = %v, want %v", got, tt.want)
			}
			assert.Empty(t, buf.String(), "no diagnostic expected")
		})
	}
}

func TestService_AddMissingRateDropsLeftOperand(t *testing.T) {
	tests := []struct {
		name string
		lhs  domain.Money
		rhs  domain.Money
	}{
		{"krw -> jpy", domain.Won(1000), domain.Yen(200)},
		{"jpy -> usd", domain.Yen(200), domain.Dollar(4)},
		{"usd -> jpy", domain.Dollar(4), domain.Yen(200)},
		{"unknown source", domain.New(3, "GBP"), domain.Dollar(4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := newTestService(&buf)

			got := s.Add(tt.lhs, tt.rhs)

			assert.Equal(t, tt.rhs, got)
			out := buf.String()
			assert.Contains(t, out, "level=error")
			assert.Contains(t, out, "from="+string(tt.lhs.Currency))
			assert.Contains(t, out, "to="+string(tt.rhs.Currency))
			assert.Contains(t, out, "exchange rate not defined")
		})
	}
}

func TestService_AddIsOrderDependent(t *testing.T) {
	s := newTestService(&bytes.Buffer{})
	yen, won, dollar := domain.Yen(200), domain.Won(1000), domain.Dollar(4)

	assert.Equal(t, domain.Dollar(7), s.Add(s.Add(yen, won), dollar))

	// won -> yen has no rate, so both yen and won vanish before the dollar is reached
	assert.Equal(t, domain.Dollar(4), s.Add(s.Add(won, yen), dollar))

	assert.Equal(t, domain.Dollar(5), s.Add(won, dollar))
	assert.Equal(t, domain.Won(5000), s.Add(dollar, won))
}

func TestService_AddUsesLookup(t *testing.T) {
	var calls int
	var lookup LookupFunc = func(source domain.Currency, target domain.Currency) (domain.Rate, error) {
		calls++
		if source == "ABC" && target == "XYZ" {
			return 2.5, nil
		}
		return 0, errors.New("bad rate")
	}
	s := NewService(lookup, log.NewNopLogger())

	assert.Equal(t, domain.New(7, "XYZ"), s.Add(domain.New(2, "ABC"), domain.New(2, "XYZ")))
	assert.Equal(t, domain.New(2, "ABC"), s.Add(domain.New(2, "XYZ"), domain.New(2, "ABC")))
	assert.Equal(t, domain.New(4, "ABC"), s.Add(domain.New(2, "ABC"), domain.New(2, "ABC")))
	assert.Equal(t, 2, calls, "same currency must not consult the lookup")
}

func TestService_Multiply(t *testing.T) {
	s := newTestService(&bytes.Buffer{})

	tests := []struct {
		name   string
		m      domain.Money
		factor float64
		want   domain.Money
	}{
		{"dollar", domain.Dollar(1), 4, domain.Dollar(4)},
		{"won", domain.Won(1000), 4, domain.Won(4000)},
		{"by zero", domain.Yen(200), 0, domain.Yen(0)},
		{"negative factor", domain.Dollar(3), -2, domain.Dollar(-6)},
		{"fractional factor", domain.Won(1000), 0.5, domain.Won(500)},
		{"unknown currency kept", domain.New(2, "GBP"), 3, domain.New(6, "GBP")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Multiply(tt.m, tt.factor)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.m.Currency, got.Currency)
		})
	}
}

func TestService_OperandsUnchanged(t *testing.T) {
	s := newTestService(&bytes.Buffer{})
	lhs, rhs := domain.Won(1000), domain.Dollar(4)

	_ = s.Add(lhs, rhs)
	_ = s.Multiply(lhs, 3)

	assert.Equal(t, domain.Won(1000), lhs)
	assert.Equal(t, domain.Dollar(4), rhs)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, domain.Dollar(8), Add(domain.Dollar(4), domain.Dollar(4)))
	assert.Equal(t, domain.Dollar(5), Add(domain.Won(1000), domain.Dollar(4)))
	assert.Equal(t, domain.Dollar(7), Add(Add(domain.Yen(200), domain.Won(1000)), domain.Dollar(4)))
	assert.Equal(t, domain.Dollar(4), Multiply(domain.Dollar(1), 4))
	assert.Equal(t, domain.Won(4000), Multiply(domain.Won(1000), 4))
	assert.Equal(t, domain.Won(5000), Add(domain.Dollar(4), domain.Won(1000)))
}
