package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	address := domain.Address("0x5409ed021d9299bf6814279a6a1411a7e866a631")

	tkn, err := u.SignToken(ctx, address)
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, string(address), ads)
}

func TestSignTokenRejectsInvalidAddress(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")

	_, err := u.SignToken(ctx, "my-address")
	assert.Equal(t, domain.ErrInvalidAddress, err)
}

func TestParseTokenRejectsMalformedToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")

	for _, tkn := range []string{"", "not-a-jwt", "a.b"} {
		_, err := u.ParseToken(ctx, tkn)
		assert.Error(t, err)
	}
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	ctx := ctx.Background()
	address := domain.Address("0x5409ed021d9299bf6814279a6a1411a7e866a631")

	tkn, err := usecase.New("other-secret").SignToken(ctx, address)
	assert.NoError(t, err)

	_, err = usecase.New("jwt-secret").ParseToken(ctx, tkn)
	assert.Error(t, err)
}
