package ethereum

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// GenerateKey returns a fresh key and its checksummed account address
func GenerateKey() (*ecdsa.PrivateKey, string, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, "", err
	}
	return privateKey, crypto.PubkeyToAddress(privateKey.PublicKey).Hex(), nil
}

// SignMessage personal_signs msg, ValidateMsgSignature accepts the result
func SignMessage(privateKey *ecdsa.PrivateKey, msg []byte) (string, error) {
	sig, err := crypto.Sign(accounts.TextHash(msg), privateKey)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(sig), nil
}
