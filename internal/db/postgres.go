package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/config"
	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

type PostgresService struct {
	db       *gorm.DB
	log      *logger.Logger
	isSQLite bool
}

// NewPostgresService connects to Postgres using the resolved config. When no
// Postgres host is configured it falls back to an on-disk sqlite database so
// the service can run locally without an external database.
func NewPostgresService(cfg config.PostgresConfig, log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	if cfg.Host == "" {
		serviceLog.Warn("POSTGRES_HOST not set, using local sqlite database")
		sdb, err := gorm.Open(sqlite.Open("studyplanner.db"), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open sqlite fallback: %w", err)
		}
		return &PostgresService{db: sdb, log: serviceLog, isSQLite: true}, nil
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	serviceLog.Info("Connecting to Postgres...", "host", cfg.Host, "db", cfg.Name)
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to Postgres: %w", err)
	}

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Course{},
		&types.Topic{},
		&types.Subtopic{},
		&types.StudyPlan{},
		&types.StudyLog{},
		&types.Quiz{},
		&types.QuizQuestion{},
		&types.QuizAttempt{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if s.isSQLite {
		return nil
	}
	s.log.Info("Configuring foreign key relationships...")
	statements := []string{
		`ALTER TABLE "user_token" DROP CONSTRAINT IF EXISTS "fk_user_token_user_id";
		 ALTER TABLE "user_token" ADD CONSTRAINT "fk_user_token_user_id"
		 FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`,
		`ALTER TABLE "study_log" DROP CONSTRAINT IF EXISTS "fk_study_log_topic_id";
		 ALTER TABLE "study_log" ADD CONSTRAINT "fk_study_log_topic_id"
		 FOREIGN KEY ("topic_id") REFERENCES "topic"("id") ON DELETE SET NULL`,
		`ALTER TABLE "study_log" DROP CONSTRAINT IF EXISTS "fk_study_log_course_id";
		 ALTER TABLE "study_log" ADD CONSTRAINT "fk_study_log_course_id"
		 FOREIGN KEY ("course_id") REFERENCES "course"("id") ON DELETE CASCADE`,
		`ALTER TABLE "study_plan" DROP CONSTRAINT IF EXISTS "fk_study_plan_course_id";
		 ALTER TABLE "study_plan" ADD CONSTRAINT "fk_study_plan_course_id"
		 FOREIGN KEY ("course_id") REFERENCES "course"("id") ON DELETE CASCADE`,
	}
	for _, stmt := range statements {
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("configure foreign keys: %w", err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
