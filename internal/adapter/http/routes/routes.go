package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "momo_gateway/docs" // swagger docs registration
	"momo_gateway/internal/adapter/http/handlers"
	repository2 "momo_gateway/internal/adapter/persistence/repository"
	"momo_gateway/internal/infrastructure/database"
	"momo_gateway/internal/infrastructure/payments"
	"momo_gateway/internal/usecase"
	"momo_gateway/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run starts the server, arms reconciliation and blocks until SIGINT/SIGTERM.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reconciler := getRoutes(ctx)

	srv := &http.Server{Addr: ":" + strconv.Itoa(PORT), Handler: router}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()

	// Tear the periodic sweep down before the listener so no background work
	// leaks past shutdown.
	reconciler.StopPeriodic()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}

func getRoutes(ctx context.Context) *usecase.ReconciliationUseCase {
	ddb := database.ConnectDynamoDB()

	pendingRepo := repository2.NewPendingPaymentDynamoRepository(ddb)
	subscriptionRepo := repository2.NewSubscriptionDynamoRepository(ddb)

	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo)

	// The gateway is constructed once and injected; sandbox credentials are
	// provisioned here, before any consumer can race first use. A bootstrap
	// failure degrades payments to typed errors instead of crashing.
	var paymentGateway interfaces.IPaymentGateway
	gwCfg, err := payments.ConfigFromEnv()
	if err != nil {
		log.Printf("MoMo gateway not configured: %v", err)
	} else {
		mtn, err := payments.NewMtnGateway(gwCfg)
		if err != nil {
			log.Printf("MoMo gateway not configured: %v", err)
		} else {
			if err := mtn.Initialize(ctx); err != nil {
				log.Printf("MoMo sandbox bootstrap failed, payments degraded: %v", err)
			}
			paymentGateway = mtn
		}
	}

	reconciler := usecase.NewReconciliationUseCase(paymentGateway, pendingRepo, subscriptionUseCase.ActivateFromPayment, pendingTTLFromEnv())
	paymentUseCase := usecase.NewPaymentUseCase(paymentGateway, pendingRepo)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, reconciler)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, subscriptionHandler)

	// Startup sweep: resolve anything tracked before this process started,
	// then keep polling while work remains.
	go func() {
		if err := reconciler.RunSweep(ctx); err != nil {
			log.Printf("startup reconciliation sweep failed: %v", err)
		}
		if _, err := reconciler.StartPeriodic(ctx, sweepPeriodFromEnv()); err != nil {
			log.Printf("failed to arm periodic reconciliation: %v", err)
		}
	}()

	return reconciler
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func sweepPeriodFromEnv() time.Duration {
	if v := os.Getenv("RECONCILE_PERIOD_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return usecase.DefaultSweepPeriod
}

func pendingTTLFromEnv() time.Duration {
	if v := os.Getenv("PENDING_PAYMENT_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return usecase.DefaultPendingTTL
}
