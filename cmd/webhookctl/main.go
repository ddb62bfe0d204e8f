package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgmodels "github.com/go-telegram/bot/models"
	"github.com/jessevdk/go-flags"

	"giveaway-wheel-backend/internal/common/logger"
	"giveaway-wheel-backend/internal/common/middleware"
	"giveaway-wheel-backend/internal/platform/telegram"
)

type botOptions struct {
	Token  string `long:"token" env:"TELEGRAM_BOT_TOKEN" required:"true" description:"bot token"`
	APIURL string `long:"api-url" env:"TELEGRAM_API_URL" default:"https://api.telegram.org" description:"Bot API base URL"`
	Secret string `long:"secret" env:"TELEGRAM_WEBHOOK_SECRET" description:"secret_token sent by Telegram with every update"`
}

type setCommand struct {
	botOptions
	URL string `long:"url" required:"true" description:"public https URL of /api/webhook/telegram"`
}

type infoCommand struct {
	botOptions
}

type simulateCommand struct {
	Target string `long:"target" required:"true" description:"webhook endpoint of a running deployment"`
	Text   string `long:"text" default:"GO" description:"message text"`
	UserID int64  `long:"user-id" default:"100000001" description:"sender Telegram ID"`
	First  string `long:"first-name" default:"Test" description:"sender first name"`
	Secret string `long:"secret" env:"TELEGRAM_WEBHOOK_SECRET" description:"value of the secret token header"`
}

var opts struct {
	Debug bool `long:"debug" env:"DEBUG" description:"debug logging"`

	Set      setCommand      `command:"set" description:"register the webhook URL with Telegram"`
	Info     infoCommand     `command:"info" description:"print current webhook info"`
	Simulate simulateCommand `command:"simulate" description:"post a synthetic update to a webhook endpoint"`
}

var ctx context.Context

func main() {
	var cancel context.CancelFunc
	ctx, cancel = signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		logger.Init("webhookctl", opts.Debug)
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

func (o botOptions) client() (*telegram.Client, error) {
	return telegram.NewClient(telegram.Options{Token: o.Token, APIURL: o.APIURL})
}

func (c *setCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}

	ok, err := client.SetWebhook(ctx, c.URL, c.Secret)
	if err != nil {
		logger.Error().Err(err).Str("url", c.URL).Msg("setWebhook failed")
		return err
	}

	logger.Info().Bool("result", ok).Str("url", c.URL).Msg("Webhook registered")
	return nil
}

func (c *infoCommand) Execute([]string) error {
	client, err := c.client()
	if err != nil {
		return err
	}

	info, err := client.GetWebhookInfo(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("getWebhookInfo failed")
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func (c *simulateCommand) Execute([]string) error {
	status, body, err := simulate(ctx, http.DefaultClient, c)
	if err != nil {
		logger.Error().Err(err).Str("target", c.Target).Msg("Simulated update failed")
		return err
	}

	logger.Info().Int("status", status).Str("body", string(body)).Msg("Simulated update delivered")
	return nil
}

// syntheticUpdate builds a private-chat message update like the ones Telegram delivers.
func syntheticUpdate(c *simulateCommand, now time.Time) tgmodels.Update {
	return tgmodels.Update{
		ID: now.Unix(),
		Message: &tgmodels.Message{
			ID:   int(now.Unix() % 1_000_000),
			Date: int(now.Unix()),
			Text: c.Text,
			From: &tgmodels.User{ID: c.UserID, FirstName: c.First},
			Chat: tgmodels.Chat{ID: c.UserID, Type: tgmodels.ChatTypePrivate},
		},
	}
}

func simulate(ctx context.Context, client *http.Client, c *simulateCommand) (int, []byte, error) {
	payload, err := json.Marshal(syntheticUpdate(c, time.Now()))
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Target, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Secret != "" {
		req.Header.Set(middleware.TelegramSecretHeader, c.Secret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, body, fmt.Errorf("webhook responded %d", resp.StatusCode)
	}
	return resp.StatusCode, body, nil
}
