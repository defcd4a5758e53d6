package domain

import (
	"math/big"
	"strings"
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBig() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, ErrInvalidNumberFormat
	}
	return id, nil
}

type Table string

const (
	TableCollections  Table = "collections"
	TableSales        Table = "sales"
	TableMarketConfig Table = "marketConfig"
	TableOwnership    Table = "ownership"
	TableEvents       Table = "events"
)

// Coin is an exact integer amount of one denomination, carried as a
// decimal string so no precision is lost at rest or on the wire.
type Coin struct {
	Denom  string `json:"denom" bson:"denom"`
	Amount string `json:"amount" bson:"amount"`
}

// AmountBig parses the amount as a non-negative base-10 integer.
func (c Coin) AmountBig() (*big.Int, error) {
	amt, ok := new(big.Int).SetString(c.Amount, 10)
	if !ok || amt.Sign() < 0 {
		return nil, ErrInvalidNumberFormat
	}
	return amt, nil
}
