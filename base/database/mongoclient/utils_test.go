package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/settlement/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type patchableSale struct {
		Owner   *string `bson:"ownerAddress,omitempty"`
		Fee     *uint64 `bson:"takerFeePercent,omitempty"`
		Address string  `bson:"erc721Address"`
		TokenId string  `bson:"tokenId"`
	}

	patchable := &patchableSale{}
	patchable.Owner = ptr.String("")
	patchable.Fee = ptr.Uint64(5)
	patchable.TokenId = "42"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"ownerAddress":    "",
			"takerFeePercent": uint64(5),
			// erc721Address is empty, so ignored
			"tokenId": "42",
		},
		updater,
	)
}
