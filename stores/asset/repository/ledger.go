package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/asset"
	"github.com/x-xyz/marketplace/domain/keys"
	"github.com/x-xyz/marketplace/service/query"
)

var timeNow = time.Now

type ledgerImpl struct {
	q query.Mongo
}

// NewLedger is the mongo backed asset registry
func NewLedger(q query.Mongo) asset.Ledger {
	return &ledgerImpl{q}
}

func assetSelector(assetRef domain.Address, assetId domain.TokenId) bson.M {
	return bson.M{"assetRef": assetRef.ToLower(), "assetId": assetId}
}

func approvalKey(assetRef, owner, operator domain.Address) string {
	return keys.RedisKey(assetRef.ToLowerStr(), owner.ToLowerStr(), operator.ToLowerStr())
}

func (im *ledgerImpl) find(c ctx.Ctx, assetRef domain.Address, assetId domain.TokenId) (*asset.Asset, error) {
	res := &asset.Asset{}
	if err := im.q.FindOne(c, domain.TableAssets, assetSelector(assetRef, assetId), res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"assetRef": assetRef,
			"assetId":  assetId,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *ledgerImpl) OwnerOf(c ctx.Ctx, assetRef domain.Address, assetId domain.TokenId) (domain.Address, error) {
	a, err := im.find(c, assetRef, assetId)
	if err != nil {
		return "", err
	}
	return a.Owner, nil
}

func (im *ledgerImpl) IsApproved(c ctx.Ctx, assetRef, owner, operator domain.Address, assetId domain.TokenId) (bool, error) {
	a, err := im.find(c, assetRef, assetId)
	if err != nil && err != domain.ErrNotFound {
		return false, err
	}
	if a != nil && a.Owner.Equals(owner) && !a.Approved.IsEmpty() && a.Approved.Equals(operator) {
		return true, nil
	}

	approval := asset.OperatorApproval{}
	err = im.q.FindOne(c, domain.TableAssetApprovals, bson.M{"_id": approvalKey(assetRef, owner, operator)}, &approval)
	if err == query.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"owner":    owner,
			"operator": operator,
		}).Error("q.FindOne failed")
		return false, err
	}
	return approval.Approved, nil
}

func (im *ledgerImpl) Transfer(c ctx.Ctx, assetRef, operator, from, to domain.Address, assetId domain.TokenId) error {
	owner, err := im.OwnerOf(c, assetRef, assetId)
	if err != nil {
		return err
	}
	if !owner.Equals(from) {
		return xerrors.Errorf("%s does not own %s/%s: %w", from, assetRef, assetId, domain.ErrNotOwner)
	}
	if !operator.Equals(from) {
		if ok, err := im.IsApproved(c, assetRef, from, operator, assetId); err != nil {
			return err
		} else if !ok {
			return xerrors.Errorf("operator %s: %w", operator, domain.ErrNotApproved)
		}
	}

	selector := assetSelector(assetRef, assetId)
	selector["owner"] = owner
	updater := bson.M{
		"owner":     to.ToLower(),
		"approved":  "",
		"updatedAt": timeNow().UTC(),
	}
	if err := im.q.Patch(c, domain.TableAssets, selector, updater); err == query.ErrNotFound {
		return xerrors.Errorf("owner changed during transfer: %w", domain.ErrNotOwner)
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"assetRef": assetRef,
			"assetId":  assetId,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *ledgerImpl) Mint(c ctx.Ctx, assetRef domain.Address, assetId domain.TokenId, owner domain.Address) error {
	a := asset.Asset{
		Id: asset.Id{
			AssetRef: assetRef.ToLower(),
			AssetId:  assetId,
		},
		Owner:     owner.ToLower(),
		UpdatedAt: timeNow().UTC(),
	}
	if err := im.q.Insert(c, domain.TableAssets, a); err == query.ErrDuplicateKey {
		return domain.ErrAssetAlreadyExists
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"assetRef": assetRef,
			"assetId":  assetId,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *ledgerImpl) SetApproval(c ctx.Ctx, assetRef, owner, operator domain.Address, assetId domain.TokenId, approved bool) error {
	selector := assetSelector(assetRef, assetId)
	selector["owner"] = owner.ToLower()

	updater := bson.M{"approved": "", "updatedAt": timeNow().UTC()}
	if approved {
		updater["approved"] = operator.ToLower()
	}
	if err := im.q.Patch(c, domain.TableAssets, selector, updater); err == query.ErrNotFound {
		return domain.ErrNotOwner
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"assetRef": assetRef,
			"assetId":  assetId,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *ledgerImpl) SetApprovalForAll(c ctx.Ctx, assetRef, owner, operator domain.Address, approved bool) error {
	key := approvalKey(assetRef, owner, operator)
	approval := asset.OperatorApproval{
		Key:      key,
		AssetRef: assetRef.ToLower(),
		Owner:    owner.ToLower(),
		Operator: operator.ToLower(),
		Approved: approved,
	}
	if err := im.q.Upsert(c, domain.TableAssetApprovals, bson.M{"_id": key}, approval); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"owner":    owner,
			"operator": operator,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
