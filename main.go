// Subscriber Console - Magma NMS加入者管理コンソール
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/oyaguma3/nms-subscriber-console/internal/audit"
	"github.com/oyaguma3/nms-subscriber-console/internal/config"
	"github.com/oyaguma3/nms-subscriber-console/internal/nms"
	"github.com/oyaguma3/nms-subscriber-console/internal/store"
	"github.com/oyaguma3/nms-subscriber-console/internal/subscriber"
	"github.com/oyaguma3/nms-subscriber-console/internal/ui"
	uisub "github.com/oyaguma3/nms-subscriber-console/internal/ui/subscriber"
	"github.com/oyaguma3/nms-subscriber-console/pkg/logging"
	"github.com/oyaguma3/nms-subscriber-console/pkg/valkey"
	"github.com/redis/go-redis/v9"
)

var _ store.Backend = (*nms.Client)(nil)

// ページ名
const (
	pageMainMenu     = "main-menu"
	pageStartupError = "startup-error"
	pageHelp         = "help"
	pageList         = "subscriber-list"
	pageExport       = "subscriber-export"
	pageLoadError    = "load-error"
)

// Application はアプリケーション全体を管理する。
type Application struct {
	app         *ui.App
	cfg         *config.Config
	logFile     *os.File
	redisClient *redis.Client
	fields      *logging.CommonFields
	auditLogger *audit.Logger

	// Stores
	subscriberStore *store.SubscriberStore
	catalog         *store.Catalog

	listScreen *uisub.ListScreen
}

func main() {
	// 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// TUIが端末を使うため、ログはファイルへ出力する
	logFile, err := initLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}

	masker := logging.NewMasker(cfg.LogMaskIMSI)
	application := &Application{
		app:         ui.NewApp(),
		cfg:         cfg,
		logFile:     logFile,
		fields:      logging.NewCommonFields(masker),
		auditLogger: audit.NewLogger(logFile, cfg.AdminUser, masker),
	}
	defer application.cleanup()

	slog.Info("subscriber console starting", "backend", cfg.Backend)

	// バックエンド接続と加入者の初期読み込み
	if err := application.connect(); err != nil {
		slog.Error("initial load failed", logging.WithError(err))
		application.showStartupError(err)
	} else {
		application.showMainMenu()
	}

	application.setupGlobalKeyBindings()

	if err := application.app.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// initLogger はログファイルを開き、JSON形式のロガーを初期化する。
func initLogger(cfg *config.Config) (*os.File, error) {
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler).With("app", audit.AppName))
	return f, nil
}

// connect はバックエンドを生成し、既知の加入者を読み込む。
// バックエンドは一度生成したら再利用し、再試行では読み込みだけをやり直す。
func (a *Application) connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), config.InitialLoadTimeout)
	defer cancel()

	if a.subscriberStore == nil {
		backend, err := a.newBackend(ctx)
		if err != nil {
			return err
		}
		a.subscriberStore = store.NewSubscriberStore(backend)
		a.catalog = store.NewCatalog(backend)
	}

	return a.subscriberStore.Load(ctx)
}

func (a *Application) newBackend(ctx context.Context) (store.Backend, error) {
	if a.cfg.UseValkey() {
		client, err := valkey.NewClient(ctx, valkey.ConsoleOptions(a.cfg.ValkeyAddr, a.cfg.ValkeyPassword))
		if err != nil {
			return nil, err
		}
		a.redisClient = client
		return store.NewValkeyBackend(client), nil
	}
	return nms.NewClient(a.cfg)
}

// startupHints は接続エラー時に確認を促す項目を返す。
func (a *Application) startupHints() []string {
	if a.cfg.UseValkey() {
		return []string{
			"Valkey is running on " + a.cfg.ValkeyAddr,
			"VALKEY_PASSWORD environment variable is set correctly",
		}
	}
	return []string{
		"NMS API is reachable at " + a.cfg.NMSAPIURL,
		"NMS_NETWORK_ID (" + a.cfg.NMSNetworkID + ") exists",
		"NMS_CLIENT_CERT / NMS_CLIENT_KEY are valid",
	}
}

func (a *Application) showStartupError(err error) {
	modal := ui.NewStartupErrorScreen(err.Error(), a.startupHints(),
		func() {
			// Retry
			a.app.GetStatusBar().ShowInfo("Connecting...")
			go func() {
				err := a.connect()
				a.app.QueueUpdateDraw(func() {
					if err != nil {
						slog.Error("initial load failed", logging.WithError(err))
						a.app.GetStatusBar().ShowError("Connection failed: " + err.Error())
						return
					}
					a.app.CloseModal(pageStartupError, nil)
					a.showMainMenu()
				})
			}()
		},
		func() {
			// Exit
			a.app.Stop()
		},
	)

	a.app.ShowModal(pageStartupError, modal, nil)
}

func (a *Application) showMainMenu() {
	menu := ui.NewMainMenu("Subscriber Console - Main Menu", []ui.MenuItem{
		{Label: "Subscribers", Description: "List and edit subscribers", Key: '1', Action: a.showSubscriberList},
		{Label: "Add Subscribers", Description: "Add subscribers from CSV or manual input", Key: '2', Action: a.showAddDialog},
		{Label: "Export", Description: "Export subscribers to a CSV file", Key: '3', Action: a.showExportScreen},
		{Label: "Exit", Description: "Exit the application", Key: 'q', Action: a.app.Stop},
	}, a.app.Stop)

	a.app.AddPage(pageMainMenu, menu, true, true)
	a.app.SwitchToPage(pageMainMenu)
	a.app.SetFocus(menu)
}

func (a *Application) setupGlobalKeyBindings() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Ctrl+Q で終了
		if event.Key() == ui.KeyQuit {
			a.app.Stop()
			return nil
		}

		// F1 でヘルプ
		if event.Key() == ui.KeyHelp {
			a.showHelp()
			return nil
		}

		return event
	})
}

func (a *Application) showHelp() {
	if a.app.HasPage(pageHelp) {
		return
	}
	restore := a.app.Focused()
	modal := ui.NewHelpModal(ui.GetDefaultHelpSections(), func() {
		a.app.CloseModal(pageHelp, restore)
	})
	a.app.ShowModal(pageHelp, modal, nil)
}

func (a *Application) cleanup() {
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// Subscriber Management
func (a *Application) showSubscriberList() {
	if a.listScreen == nil {
		a.listScreen = uisub.NewListScreen(a.app, a.subscriberStore)
		a.listScreen.SetOnAdd(a.showAddDialog)
		a.listScreen.SetOnEdit(a.showEditDialog)
		a.listScreen.SetOnExport(a.showExportScreen)
		a.listScreen.SetOnBack(func() {
			a.app.SwitchToPage(pageMainMenu)
		})
		a.app.AddPage(pageList, a.listScreen.GetTable(), true, false)
	}

	a.listScreen.Show()
	a.app.SwitchToPage(pageList)
	a.app.SetFocus(a.listScreen.GetTable())
}

// withChoices はカタログを読み込んでからUIスレッドでfnを呼ぶ。
// 読み込みに失敗したカタログは既定値のみで続行する。
func (a *Application) withChoices(fn func(choices *uisub.Choices)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.NMSRequestTimeout)
		defer cancel()

		choices, err := uisub.LoadChoices(ctx, a.catalog)
		a.app.QueueUpdateDraw(func() {
			if err != nil {
				slog.Warn("catalog load failed", logging.WithError(err))
				a.app.GetStatusBar().ShowError("Failed to load catalogs: " + err.Error())
			}
			fn(choices)
		})
	}()
}

func (a *Application) showAddDialog() {
	a.withChoices(func(choices *uisub.Choices) {
		adder := subscriber.NewBulkAdder(a.subscriberStore, a.auditLogger, a.fields)
		dialog := uisub.NewAddDialog(a.app, a.subscriberStore, adder, a.auditLogger, choices, func(saved int) {
			if saved > 0 {
				slog.Info("subscribers added", logging.WithCount(saved))
			}
			a.showSubscriberList()
		})
		dialog.Show()
	})
}

func (a *Application) showEditDialog(id string, table subscriber.EditTable) {
	a.withChoices(func(choices *uisub.Choices) {
		ctx, cancel := context.WithTimeout(context.Background(), config.NMSRequestTimeout)
		defer cancel()

		dialog, err := uisub.OpenEditDialog(ctx, a.app, a.subscriberStore, a.auditLogger, a.fields,
			choices, id, table, func(bool) {
				a.showSubscriberList()
			})
		if err != nil {
			slog.Error("subscriber load failed", a.fields.WithIMSI(id), logging.WithError(err))
			restore := a.app.Focused()
			errDialog := ui.NewErrorDialog("Edit Subscriber",
				fmt.Sprintf("Failed to load subscriber %s\n\n%s", id, subscriber.ErrorMessage(err)),
				func() {
					a.app.CloseModal(pageLoadError, restore)
				})
			a.app.ShowModal(pageLoadError, errDialog.GetModal(), nil)
			return
		}
		dialog.Show()
	})
}

// Export
func (a *Application) showExportScreen() {
	screen := uisub.NewExportScreen(a.app, a.subscriberStore, a.auditLogger, func() {
		a.app.RemovePage(pageExport)
		a.showSubscriberList()
	})
	a.app.ShowModal(pageExport, ui.Centered(screen.GetFlex(), 80, 20), screen.GetForm())
}
