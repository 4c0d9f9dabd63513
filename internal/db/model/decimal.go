package model

import (
	"fmt"

	"cosmossdk.io/math"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Dec stores a math.LegacyDec as a decimal string in BSON. Amounts and
// per-period rates must never go through float64.
type Dec struct {
	math.LegacyDec
}

func NewDec(d math.LegacyDec) Dec {
	return Dec{LegacyDec: d}
}

func ZeroDec() Dec {
	return Dec{LegacyDec: math.LegacyZeroDec()}
}

func DecFromString(s string) (Dec, error) {
	d, err := math.LegacyNewDecFromStr(s)
	if err != nil {
		return Dec{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return Dec{LegacyDec: d}, nil
}

func (d Dec) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if d.IsNil() {
		return bson.MarshalValue(math.LegacyZeroDec().String())
	}
	return bson.MarshalValue(d.LegacyDec.String())
}

func (d *Dec) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	raw := bson.RawValue{Type: t, Value: data}
	if err := raw.Unmarshal(&s); err != nil {
		return err
	}

	dec, err := math.LegacyNewDecFromStr(s)
	if err != nil {
		return fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	d.LegacyDec = dec
	return nil
}

func (d Dec) Add(other Dec) Dec {
	return Dec{LegacyDec: d.LegacyDec.Add(other.LegacyDec)}
}

func (d Dec) Sub(other Dec) Dec {
	return Dec{LegacyDec: d.LegacyDec.Sub(other.LegacyDec)}
}

func (d Dec) Mul(other Dec) Dec {
	return Dec{LegacyDec: d.LegacyDec.Mul(other.LegacyDec)}
}

func (d Dec) Quo(other Dec) Dec {
	return Dec{LegacyDec: d.LegacyDec.Quo(other.LegacyDec)}
}

func (d Dec) GT(other Dec) bool  { return d.LegacyDec.GT(other.LegacyDec) }
func (d Dec) GTE(other Dec) bool { return d.LegacyDec.GTE(other.LegacyDec) }
func (d Dec) LT(other Dec) bool  { return d.LegacyDec.LT(other.LegacyDec) }
func (d Dec) Equal(other Dec) bool {
	return d.LegacyDec.Equal(other.LegacyDec)
}
