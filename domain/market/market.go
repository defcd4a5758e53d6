package market

import (
	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/domain"
)

// ConfigKey is the fixed selector of the singleton config document
const ConfigKey = "config"

// Config is the singleton marketplace configuration. TakerAddress and
// AcceptedDenom are set at bootstrap and have no mutator: rotating the fee
// recipient is out of scope, only the fee percentage can change.
type Config struct {
	Key             string         `json:"-" bson:"key"`
	TakerFeePercent uint64         `json:"takerFeePercent" bson:"takerFeePercent"`
	TakerAddress    domain.Address `json:"takerAddress" bson:"takerAddress"`
	AcceptedDenom   string         `json:"acceptedDenom" bson:"acceptedDenom"`
}

type Repo interface {
	Get(c ctx.Ctx) (*Config, error)
	Upsert(c ctx.Ctx, value *Config) error
}

type Usecase interface {
	// Bootstrap seeds the singleton when absent and is a no-op otherwise
	Bootstrap(c ctx.Ctx, value Config) error
	Get(c ctx.Ctx) (*Config, error)
	GetTakerFee(c ctx.Ctx) (uint64, error)
	UpdateTakerFee(c ctx.Ctx, caller domain.Address, feePercent uint64) (*domain.Event, error)
}
