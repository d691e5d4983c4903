// Package app wires the stores, repositories, providers and services into
// a single application context. Stores are owned here rather than living
// as package-level singletons; everything downstream receives its
// dependencies by reference from this context.
package app

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/config"
	"github.com/zshield/zshield-api/internal/metrics"
	"github.com/zshield/zshield-api/internal/provider"
	"github.com/zshield/zshield-api/internal/repository"
	"github.com/zshield/zshield-api/internal/sched"
	"github.com/zshield/zshield-api/internal/service"
	"github.com/zshield/zshield-api/internal/store"
)

const (
	// sessionSweepInterval drives the session and quote expiry sweeps.
	sessionSweepInterval = 5 * time.Minute

	// rateLimitSweepInterval drives rate-limit entry reclamation.
	rateLimitSweepInterval = 1 * time.Minute
)

// App is the process-wide application context. Construct once at startup,
// Start the background sweeps, and Close on shutdown to stop timers.
type App struct {
	Config *config.Config
	Logger *logrus.Logger

	SessionStore     *store.SessionStore
	SwapStore        *store.SwapStore
	QuoteStore       *store.QuoteStore
	TransactionStore *store.TransactionStore
	RateLimitStore   *store.RateLimitStore

	Scheduler *sched.Scheduler

	SessionRepo     *repository.SessionRepository
	SwapRepo        *repository.SwapRepository
	TransactionRepo *repository.TransactionRepository

	Zcash     *provider.ZcashProvider
	SideShift *provider.SideShiftProvider
	CoinGecko *provider.CoinGeckoProvider

	Auth      *service.AuthService
	Swap      *service.SwapService
	Wallet    *service.WalletService
	Price     *service.PriceService
	Analytics *service.AnalyticsService

	stopCh   chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New builds the full dependency graph. Nothing runs in the background
// until Start is called.
func New(cfg *config.Config, logger *logrus.Logger) *App {
	a := &App{
		Config: cfg,
		Logger: logger,
		stopCh: make(chan struct{}),
	}

	a.SessionStore = store.NewSessionStore(logger)
	a.SwapStore = store.NewSwapStore(logger)
	a.QuoteStore = store.NewQuoteStore(logger)
	a.TransactionStore = store.NewTransactionStore()
	a.RateLimitStore = store.NewRateLimitStore()

	a.Scheduler = sched.New()

	a.Zcash = provider.NewZcashProvider(logger)
	a.SideShift = provider.NewSideShiftProvider(cfg.QuoteExpiry, logger)
	a.CoinGecko = provider.NewCoinGeckoProvider(logger)

	a.SessionRepo = repository.NewSessionRepository(a.SessionStore, cfg.SessionExpiry, logger)
	a.TransactionRepo = repository.NewTransactionRepository(a.TransactionStore, logger)
	a.SwapRepo = repository.NewSwapRepository(a.SwapStore, a.TransactionRepo, a.Scheduler, a.Zcash, logger)

	a.Auth = service.NewAuthService(a.SessionRepo, a.Zcash, logger)
	a.Swap = service.NewSwapService(a.SwapRepo, a.QuoteStore, a.SideShift, cfg.QuoteExpiry, cfg.OrderExpiry, cfg.ProtocolFeePercent, logger)
	a.Price = service.NewPriceService(a.CoinGecko, logger)
	a.Wallet = service.NewWalletService(a.Zcash, a.Price, logger)
	a.Analytics = service.NewAnalyticsService(a.SwapRepo, a.SessionRepo)

	return a
}

// Start launches the periodic cleanup sweeps.
func (a *App) Start() {
	a.wg.Add(2)

	go a.sweepLoop(sessionSweepInterval, func() {
		a.SessionRepo.Cleanup()
		if cleaned := a.QuoteStore.Cleanup(); cleaned > 0 {
			a.Logger.Infof("cleaned up %d expired quotes", cleaned)
		}
		metrics.ActiveSessions.Set(float64(a.SessionRepo.CountActive()))
	})

	go a.sweepLoop(rateLimitSweepInterval, func() {
		a.RateLimitStore.Cleanup(a.Config.RateLimitWindow)
		a.Logger.Debugf("rate limit cleanup: %d entries remaining", a.RateLimitStore.Count())
	})
}

// sweepLoop runs fn on every tick until the context is closed.
func (a *App) sweepLoop(interval time.Duration, fn func()) {
	defer a.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			fn()
		}
	}
}

// Close stops background sweeps and cancels pending scheduler tasks.
// Safe to call multiple times.
func (a *App) Close() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
		a.Scheduler.Stop()
		a.wg.Wait()
		a.Logger.WithFields(logrus.Fields{
			"sessions":     a.SessionStore.Count(),
			"swaps":        a.SwapStore.Count(),
			"quotes":       a.QuoteStore.Count(),
			"transactions": a.TransactionStore.Count(),
		}).Info("application context closed")
	})
}
