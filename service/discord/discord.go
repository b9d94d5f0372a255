package discord

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain/event"
)

type Config struct {
	BotKey    string
	ChannelId string
	// PriceDecimals shifts the smallest currency unit for display
	PriceDecimals int32
	Symbol        string
	// AssetUrl is formatted with assetRef and assetId
	AssetUrl string
}

type messenger interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type notifier struct {
	cfg     Config
	discord messenger
}

// NewSaleNotifier posts every ItemSold to a discord channel
func NewSaleNotifier(cfg Config) (event.Sink, error) {
	session, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, err
	}
	return &notifier{cfg: cfg, discord: session}, nil
}

func (n *notifier) Name() string {
	return "discord"
}

func (n *notifier) Handle(c ctx.Ctx, r event.Record) error {
	if r.Type != event.TypeItemSold || r.ItemSold == nil {
		return nil
	}
	sold := r.ItemSold

	price := decimal.NewFromInt(int64(sold.Price)).Shift(-n.cfg.PriceDecimals)
	msg := &discordgo.MessageEmbed{
		Title: "Item sold!",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Listing", Value: strconv.FormatUint(sold.ListingId, 10)},
			{Name: "Seller", Value: string(sold.Seller)},
			{Name: "Buyer", Value: string(sold.Buyer)},
			{Name: "Price", Value: fmt.Sprintf("%s %s", price.String(), n.cfg.Symbol)},
		},
	}
	if n.cfg.AssetUrl != "" {
		msg.Description = fmt.Sprintf(n.cfg.AssetUrl, sold.AssetRef, sold.AssetId)
	}

	if _, err := n.discord.ChannelMessageSendEmbed(n.cfg.ChannelId, msg); err != nil {
		c.WithField("err", err).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}
