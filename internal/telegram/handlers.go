package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Tima2028/crypto-bot1/internal/chart"
	"github.com/Tima2028/crypto-bot1/internal/coingecko"
)

const welcomeText = "🚀 Crypto Tracker Bot 🚀\n\n" +
	"📈 Get real-time cryptocurrency prices and charts including:\n" +
	"  • Bitcoin, Ethereum, Binance Coin\n" +
	"  • Toncoin and other top cryptos\n\n" +
	"💡 Available commands:\n" +
	"  /price - Check cryptocurrency price\n" +
	"  /chart - Get a 24h price chart\n" +
	"  /top5 - View top 5 by market cap\n\n" +
	"Tap /price to check Toncoin price now!"

type Handlers struct {
	api     *tgbotapi.BotAPI
	market  *coingecko.Client
	intents *IntentStore
}

func NewHandlers(api *tgbotapi.BotAPI, market *coingecko.Client) *Handlers {
	return &Handlers{
		api:     api,
		market:  market,
		intents: NewIntentStore(),
	}
}

func (h *Handlers) HandleMessage(m *tgbotapi.Message) {
	switch {
	case m.IsCommand():
		switch m.Command() {
		case "start", "help":
			h.reply(m.Chat.ID, welcomeText)
		case "price":
			h.askForAsset(m, IntentPrice)
		case "chart":
			h.askForAsset(m, IntentChart)
		case "top5":
			h.handleTop5(m.Chat.ID)
		}
	case strings.TrimSpace(m.Text) != "":
		h.handleSelection(m)
	}
}

// askForAsset stores the user's intent and presents the asset keyboard:
// the live top 5 by market cap (static fallback when unavailable) plus
// the fixed Toncoin entry.
func (h *Handlers) askForAsset(m *tgbotapi.Message, intent Intent) {
	h.intents.Set(m.From.ID, intent)
	log.Printf("telegram: user %d intent set to %s", m.From.ID, intent)

	assets, err := h.market.GetTopIDs(context.Background(), 5)
	if err != nil || len(assets) == 0 {
		log.Printf("telegram: top list unavailable (%v), using fallback", err)
		assets = fallbackAssets
	}
	assets = append(assets, extraAsset)

	rows := make([][]tgbotapi.KeyboardButton, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(titleCase(a))))
	}
	keyboard := tgbotapi.NewOneTimeReplyKeyboard(rows...)
	keyboard.InputFieldPlaceholder = "Select cryptocurrency"
	keyboard.Selective = true

	msg := tgbotapi.NewMessage(m.Chat.ID, "📈 Please select a cryptocurrency from the list below:")
	msg.ReplyMarkup = keyboard
	h.api.Send(msg)
}

// handleSelection consumes the pending intent, treating the message
// text as the chosen asset label.
func (h *Handlers) handleSelection(m *tgbotapi.Message) {
	intent := h.intents.Take(m.From.ID)
	if intent == IntentNone {
		return
	}
	label := strings.TrimSpace(m.Text)
	id := assetID(label)

	switch intent {
	case IntentPrice:
		h.reply(m.Chat.ID, fmt.Sprintf("🔍 Checking current %s price...", label))
		price, err := h.market.GetPrice(context.Background(), id)
		if err != nil {
			log.Printf("telegram: price lookup for %s failed: %v", id, err)
			h.reply(m.Chat.ID, fmt.Sprintf("❌ Sorry, I couldn't retrieve the %s price at the moment. Please try again later.", label))
			return
		}
		h.reply(m.Chat.ID, fmt.Sprintf("💰 Current %s price: $%s", label, formatPrice(price)))

	case IntentChart:
		h.reply(m.Chat.ID, fmt.Sprintf("🎨 Generating 24h chart for %s...", label))
		series, err := h.market.GetMarketChart(context.Background(), id, 1)
		var img []byte
		if err == nil {
			img, err = chart.Render(label, series)
		}
		if err != nil {
			log.Printf("telegram: chart for %s failed: %v", id, err)
			h.reply(m.Chat.ID, fmt.Sprintf("❌ Sorry, I couldn't generate the chart for %s at the moment. Please try again later.", label))
			return
		}
		photo := tgbotapi.NewPhoto(m.Chat.ID, tgbotapi.FileBytes{Name: id + "_24h.png", Bytes: img})
		photo.Caption = fmt.Sprintf("📈 24-hour price chart for %s", label)
		h.api.Send(photo)
	}
}

func (h *Handlers) handleTop5(chatID int64) {
	h.reply(chatID, "Fetching the prices of the top 5 cryptocurrencies...")
	snapshots, err := h.market.GetTopMarkets(context.Background(), 5)
	if err != nil {
		log.Printf("telegram: top5 failed: %v", err)
		h.reply(chatID, "❌ Couldn't retrieve the top cryptocurrencies at the moment. Please try again later.")
		return
	}
	h.reply(chatID, "Top 5 cryptocurrencies:\n"+formatTopList(snapshots))
}

// formatTopList renders snapshots one per line: "Name (SYM): $price".
func formatTopList(snapshots []coingecko.MarketSnapshot) string {
	lines := make([]string, 0, len(snapshots))
	for _, s := range snapshots {
		lines = append(lines, fmt.Sprintf("%s (%s): $%s", s.Name, strings.ToUpper(s.Symbol), formatPrice(s.CurrentPrice)))
	}
	return strings.Join(lines, "\n")
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func (h *Handlers) reply(chatID int64, text string) {
	h.api.Send(tgbotapi.NewMessage(chatID, text))
}
