package models

import "github.com/shopspring/decimal"

// Surcharge is the tax/service-charge option attached to a bill at entry time.
type Surcharge int

const (
	SurchargeNone Surcharge = iota
	SurchargeTaxOnly
	SurchargeServiceOnly
	SurchargeTaxAndService
)

var (
	taxRate     = decimal.RequireFromString("1.07")
	serviceRate = decimal.RequireFromString("1.10")
)

// Surcharges lists every option in display order.
var Surcharges = []Surcharge{
	SurchargeNone,
	SurchargeTaxOnly,
	SurchargeServiceOnly,
	SurchargeTaxAndService,
}

// Multiplier returns the factor applied to a raw bill amount.
func (s Surcharge) Multiplier() decimal.Decimal {
	switch s {
	case SurchargeTaxOnly:
		return taxRate
	case SurchargeServiceOnly:
		return serviceRate
	case SurchargeTaxAndService:
		return taxRate.Mul(serviceRate)
	default:
		return decimal.NewFromInt(1)
	}
}

func (s Surcharge) String() string {
	switch s {
	case SurchargeTaxOnly:
		return "Tax only"
	case SurchargeServiceOnly:
		return "Service charge only"
	case SurchargeTaxAndService:
		return "Tax and service charge"
	default:
		return "No tax or service charge"
	}
}

// Next cycles to the following option, wrapping around.
func (s Surcharge) Next() Surcharge {
	return Surcharges[(int(s)+1)%len(Surcharges)]
}

// Prev cycles to the preceding option, wrapping around.
func (s Surcharge) Prev() Surcharge {
	return Surcharges[(int(s)+len(Surcharges)-1)%len(Surcharges)]
}
