package testutil

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/stakewheel-io/staking-engine/internal/db/model"
)

// RandomAlphaNum generates random alphanumeric string
// in case length <= 0 it returns empty string
func RandomAlphaNum(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	randomString := make([]byte, length)
	for i := range randomString {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		randomString[i] = charset[num.Int64()]
	}

	return string(randomString), nil
}

// RandomAsset returns a plausible asset identifier for fixtures.
func RandomAsset() string {
	return gofakeit.CurrencyShort() + "-" + gofakeit.LetterN(4)
}

// RandomOwner returns a random holder identity.
func RandomOwner() string {
	return gofakeit.UUID()
}

// RandomDec returns a random decimal amount in [1, max).
func RandomDec(max int) model.Dec {
	d, err := model.DecFromString(fmt.Sprintf("%d.%02d", gofakeit.Number(1, max-1), gofakeit.Number(0, 99)))
	if err != nil {
		panic(err)
	}
	return d
}
