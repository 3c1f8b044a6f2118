package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	server "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/primary/http"
	alerterController "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/primary/http/controllers/alerter"
	healthcheckController "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/primary/http/controllers/healthcheck"
	metricsController "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/primary/http/controllers/metrics"
	telegramController "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/primary/http/controllers/telegram"
	alerterAdapter "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/alerter"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/openweather"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/storage/sqlite"
	tgAdapter "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/telegram"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/pkg/metrics"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/repository"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/service"
	paymentRepo "github.com/BogdanDubenets/weather-bot-telegram/internal/repository/payment"
	userRepo "github.com/BogdanDubenets/weather-bot-telegram/internal/repository/user"
	alerterService "github.com/BogdanDubenets/weather-bot-telegram/internal/services/alerter"
	telegramService "github.com/BogdanDubenets/weather-bot-telegram/internal/services/telegram"
	weatherApiService "github.com/BogdanDubenets/weather-bot-telegram/internal/services/weatherapi"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/usecases/forecast"
	weatherUsecase "github.com/BogdanDubenets/weather-bot-telegram/internal/usecases/weather"
)

type Dependencies struct {
	DB              *sqlx.DB
	HTTPServer      *http.Server
	TelegramService *telegramService.Service
	TelegramClient  *tgAdapter.Client
	TelegramPoller  *tgAdapter.Poller
	Metrics         *metrics.Metrics
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initSQLite()
	if err != nil {
		return nil, fmt.Errorf("failed to init sqlite: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	botMetrics := metrics.New(registry)

	repos := a.initRepositories(db)
	alerterSvc := a.initAlerter()

	tgClient, tgService, err := a.initTelegram(ctx, botMetrics)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram: %w", err)
	}

	weatherAPI, err := a.initWeatherAPI()
	if err != nil {
		return nil, fmt.Errorf("failed to init weather api: %w", err)
	}

	paymentUseCase := a.initPayment(tgClient, repos, tgService, alerterSvc, botMetrics)

	composer := forecast.NewComposer(forecast.DefaultTexts())
	weatherUseCase := weatherUsecase.New(
		repos.User,
		repos.Payment,
		weatherAPI,
		tgClient,
		paymentUseCase,
		composer,
		botMetrics,
		a.Cfg.AdminIDs,
		a.Log,
	)
	tgService.SetBotService(weatherUseCase)

	httpServer := a.initHTTP(db, tgService, alerterSvc, registry)

	poller, err := a.initTelegramMode(ctx, tgService, tgClient)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram mode: %w", err)
	}

	return &Dependencies{
		DB:              db,
		HTTPServer:      httpServer,
		TelegramService: tgService,
		TelegramClient:  tgClient,
		TelegramPoller:  poller,
		Metrics:         botMetrics,
	}, nil
}

// repositories содержит инициализированные репозитории
type repositories struct {
	User    repository.IUserRepo
	Payment repository.IPaymentRepo
}

// initRepositories инициализирует репозитории для работы с БД
func (a *App) initRepositories(db *sqlx.DB) *repositories {
	persistenceLayer := sqlite.NewDB(db)
	return &repositories{
		User:    userRepo.New(persistenceLayer, a.Log),
		Payment: paymentRepo.New(persistenceLayer, a.Log),
	}
}

// initAlerter инициализирует сервис алертов (опциональный)
func (a *App) initAlerter() service.IAlerterService {
	if a.Cfg.Alerter == nil || a.Cfg.Alerter.BotToken == "" {
		a.Log.Info("alerter is not configured, continuing without alerts")
		return nil
	}

	alerterClient := alerterAdapter.NewClient(a.Cfg.Alerter, a.Log)
	return alerterService.New(alerterClient)
}

// initWeatherAPI инициализирует клиент OpenWeatherMap
func (a *App) initWeatherAPI() (service.IWeatherAPI, error) {
	if a.Cfg.OpenWeather == nil || a.Cfg.OpenWeather.ApiKey == "" {
		return nil, fmt.Errorf("openweather configuration is missing")
	}

	client := openweather.NewClient(a.Cfg.OpenWeather, a.Log)
	return weatherApiService.New(client), nil
}

// initTelegram инициализирует Telegram клиент и сервис роутинга обновлений
func (a *App) initTelegram(ctx context.Context, botMetrics *metrics.Metrics) (*tgAdapter.Client, *telegramService.Service, error) {
	if a.Cfg.Telegram == nil || a.Cfg.Telegram.BotToken == "" {
		return nil, nil, fmt.Errorf("telegram bot token is required")
	}

	client := tgAdapter.NewClient(a.Cfg.Telegram.BotToken, a.Log)

	if err := client.GetMe(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to verify bot token: %w", err)
	}

	if err := a.registerBotCommands(ctx, client); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	// BotService и PaymentUseCase будут установлены после создания UseCase
	tgService := telegramService.New(nil, nil, client, botMetrics, a.Log)

	return client, tgService, nil
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(
	db *sqlx.DB,
	tgService *telegramService.Service,
	alerterSvc service.IAlerterService,
	registry *prometheus.Registry,
) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(db, a.Log),
		telegramController.New(tgService, a.Cfg.Telegram.WebhookSecret, a.Log),
		metricsController.New(registry),
	}

	if alerterSvc != nil {
		controllers = append(controllers, alerterController.New(alerterSvc, a.Log))
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initTelegramMode инициализирует режим работы Telegram (webhook или polling)
func (a *App) initTelegramMode(
	ctx context.Context,
	tgService *telegramService.Service,
	client *tgAdapter.Client,
) (*tgAdapter.Poller, error) {
	a.Log.Info("telegram configuration",
		"use_webhook", a.Cfg.Telegram.IsWebhookEnabled(),
		"webhook_url", a.Cfg.Telegram.WebhookURL,
	)

	if a.Cfg.Telegram.IsWebhookEnabled() {
		if err := a.setupWebhook(ctx, client); err != nil {
			return nil, fmt.Errorf("failed to setup webhook: %w", err)
		}
		return nil, nil // webhook режим, poller не нужен
	}

	a.Log.Warn("polling mode enabled - this should only be used for local development")

	handler := func(ctx context.Context, update *domain.Update) error {
		return tgService.HandleUpdate(ctx, update)
	}

	return tgAdapter.NewPoller(client, a.Cfg.Telegram, handler, a.Log), nil
}

// setupWebhook устанавливает webhook бота
func (a *App) setupWebhook(ctx context.Context, client *tgAdapter.Client) error {
	if a.Cfg.Telegram.WebhookURL == "" {
		return fmt.Errorf("webhook_url is required when use_webhook is true")
	}
	if a.Cfg.Telegram.WebhookSecret == "" {
		return fmt.Errorf("webhook_secret is required when use_webhook is true")
	}

	webhookURL := fmt.Sprintf("%s/webhook", a.Cfg.Telegram.WebhookURL)

	if err := client.SetWebhook(ctx, webhookURL, a.Cfg.Telegram.WebhookSecret); err != nil {
		a.Log.Error("failed to set webhook", "error", err, "webhook_url", webhookURL)
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	a.Log.Info("webhook set successfully", "webhook_url", webhookURL)
	return nil
}

// registerBotCommands регистрирует команды бота в Telegram
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) error {
	commands := []domain.BotCommand{
		{Command: "start", Description: "Почати роботу з ботом"},
		{Command: "weather", Description: "Замовити прогноз погоди"},
		{Command: "help", Description: "Довідка"},
	}

	return client.SetMyCommands(ctx, commands)
}

// initSQLite инициализирует подключение к SQLite и запускает миграции
func (a *App) initSQLite() (*sqlx.DB, error) {
	if a.Cfg.SQLite == nil {
		return nil, fmt.Errorf("sqlite configuration is missing")
	}

	db, err := a.Cfg.SQLite.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	a.Log.Info("sqlite connected successfully", "path", a.Cfg.SQLite.Path)

	if err := sqlite.RunMigrations(db, a.Log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
