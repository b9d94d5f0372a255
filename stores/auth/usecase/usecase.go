package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/ethereum"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/validator"
	"github.com/x-xyz/marketplace/domain"
)

const tokenTTL = 24 * time.Hour

var timeNow = time.Now

type impl struct {
	jwtSecret          []byte
	signingMsgTemplate string
}

// New issues tokens to addresses proving key ownership by signing
// signingMsgTemplate formatted with the lower case address
func New(jwtSecret, signingMsgTemplate string) domain.AuthUsecase {
	return &impl{
		jwtSecret:          []byte(jwtSecret),
		signingMsgTemplate: signingMsgTemplate,
	}
}

func (im *impl) SigningMessage(address domain.Address) string {
	return fmt.Sprintf(im.signingMsgTemplate, address.ToLowerStr())
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !validator.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}

	msg := []byte(im.SigningMessage(address))
	if ok, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Warn("ethereum.ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: timeNow().Add(tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return domain.Address(claims.Address), nil
	}

	return "", domain.ErrUnauthorized
}
