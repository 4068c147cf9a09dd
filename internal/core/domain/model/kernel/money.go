package kernel

import (
	"fmt"

	"tailorshop/internal/pkg/errs"
	"tailorshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is a non-negative monetary amount backed by exact decimal arithmetic.
// Monetary values feed financial totals, so Money never passes through
// floating point: construction, addition, subtraction, and comparison all
// operate on decimals.
//
// The zero value is invalid; construct via NewMoney, MoneyFromString, or
// ZeroMoney. Money is immutable: arithmetic methods return new values.
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "1234.50" into a Money.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid Money carrying a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Sub returns the difference of two amounts. Subtraction that would produce a
// negative amount is rejected, keeping Money non-negative.
func (m Money) Sub(other Money) (Money, error) {
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s minus %s is negative", m.amount.String(), other.amount.String()))
	}
	return Money{amount: diff, guard: guard.NewConstructorGuard()}, nil
}

// MulInt returns the amount multiplied by an integer factor.
// Used for rate-based salary accrual (rate x quantity).
func (m Money) MulInt(n int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(n))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual reports whether two amounts are numerically equal.
// Trailing zeroes are ignored: 700 equals 700.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string form of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
