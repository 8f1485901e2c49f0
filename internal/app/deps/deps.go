package deps

import (
	"context"
	"sync"
	"time"

	"newsdesk/internal/config"
	dl "newsdesk/internal/core/domain/logging"
	"newsdesk/internal/core/domain/news"
	"newsdesk/internal/core/domain/notification"
	drl "newsdesk/internal/core/domain/rate_limiter"
	"newsdesk/internal/core/domain/user"
	"newsdesk/internal/db"
	dbnews "newsdesk/internal/db/news"
	dbuser "newsdesk/internal/db/user"
	"newsdesk/internal/i18n"
	"newsdesk/internal/implementations/email"
	"newsdesk/internal/implementations/logging"
	"newsdesk/internal/implementations/metrics"
	newspublisher "newsdesk/internal/implementations/news_publisher"
	passwordhasher "newsdesk/internal/implementations/password_hasher"
	randomstringgenerator "newsdesk/internal/implementations/random_string_generator"
	ratelimiter "newsdesk/internal/implementations/rate_limiter"
	resetmailer "newsdesk/internal/implementations/reset_mailer"
	"newsdesk/internal/implementations/session"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/r3labs/sse/v2"
	"gorm.io/gorm"
)

const METRICS_NAMESPACE = "newsdesk"

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB        *pgxpool.Pool
	Gorm      *gorm.DB
	Redis     *redis.Client
	SseServer *sse.Server

	Registry   *prometheus.Registry
	Metrics    *metrics.Metrics
	Translator *i18n.Translator

	Now func() time.Time

	UserRepository     user.UserRepository
	SessionRepository  user.SessionRepository
	CategoryRepository news.CategoryRepository
	NewsRepository     news.NewsRepository

	RateLimiter drl.RateLimiter

	MailSender            notification.Sender
	PasswordResetNotifier user.PasswordResetNotifier
	NewsPublisher         news.Publisher

	ValidationCodeGenerator user.ValidationCodeGenerator
	PasswordGenerator       user.PasswordGenerator
	SessionTokenGenerator   user.SessionTokenGenerator
	PasswordHasher          user.PasswordHasher
}

// InitDeps builds everything the web server needs. The returned function
// releases the connections.
func InitDeps(cfg *config.Config) (*Deps, func()) {
	deps := &Deps{Config: cfg}

	closeLogger := deps.initLogger()
	deps.initMigrations()
	closePgxPool := deps.initPgxPool()
	closeGorm := deps.initGorm()
	closeRedisClient := deps.initRedisClient()
	closeSseServer := deps.initSseServer()
	deps.initAwsConfig()
	deps.initMetrics()
	deps.initTranslator()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.CategoryRepository = dbnews.NewGormCategoryRepository(deps.Gorm)
	deps.NewsRepository = dbnews.NewGormNewsRepository(deps.Gorm)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.MailSender = metrics.NewSender(deps.Metrics, deps.initMailSender())
	deps.PasswordResetNotifier = resetmailer.New(deps.MailSender, deps.Translator)
	deps.NewsPublisher = newspublisher.NewSSE(deps.SseServer, deps.Metrics.NewsPublishedTotal)

	generator := randomstringgenerator.NewGenerator()
	deps.ValidationCodeGenerator = generator
	deps.PasswordGenerator = generator
	deps.SessionTokenGenerator = session.NewUUID()
	deps.PasswordHasher = passwordhasher.NewBcrypt(cfg.Secret, cfg.BcryptHasherCost)

	return deps, closeAll(
		closeSseServer,
		closeRedisClient,
		closeGorm,
		closePgxPool,
		closeLogger,
	)
}

// InitAdminDeps builds the subset used by the admin CLI: the user store and
// the password hasher.
func InitAdminDeps(cfg *config.Config) (*Deps, func()) {
	deps := &Deps{Config: cfg}

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.PasswordHasher = passwordhasher.NewBcrypt(cfg.Secret, cfg.BcryptHasherCost)

	return deps, closeAll(closePgxPool, closeLogger)
}

func closeAll(closeFuncs ...func()) func() {
	return func() {
		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}
		wg.Wait()
	}
}

func (deps *Deps) initAwsConfig() {
	if deps.Config.IsTestMode {
		return
	}
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not load AWS config.", dl.Entry("err", err))
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initMigrations() {
	applied, err := db.Migrate(deps.Config.PostgresqlURL, deps.Config.MigrationsPath)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not apply migrations.", dl.Entry("err", err))
		panic(err)
	}
	deps.Logger.Info(context.Background(), "Migrations checked.", dl.Entry("applied", applied))
}

func (deps *Deps) initPgxPool() func() {
	pool, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = pool
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		pool.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initGorm() func() {
	gormDB, err := dbnews.Open(deps.Config.PostgresqlURL, deps.Config.IsTestMode)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not open news store.", dl.Entry("err", err))
		panic(err)
	}
	deps.Gorm = gormDB
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down news store connection.")
		if sqlDB, err := gormDB.DB(); err == nil {
			sqlDB.Close()
		}
		deps.Logger.Info(context.Background(), "News store connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = false
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initMetrics() {
	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.New(METRICS_NAMESPACE, deps.Registry)
}

func (deps *Deps) initTranslator() {
	translator, err := i18n.New(deps.Config.DefaultLanguage)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not load translations.", dl.Entry("err", err))
		panic(err)
	}
	deps.Translator = translator
}

func (deps *Deps) initMailSender() notification.Sender {
	if deps.Config.IsTestMode {
		return email.NewLoggingSender(deps.Logger)
	}
	return email.NewSESSender(deps.AwsConfig, deps.Config.MailSender)
}
