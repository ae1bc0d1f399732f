package main

import (
	"io"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schoolfunds/backend/internal/models"
	"github.com/schoolfunds/backend/internal/router"
)

// @title			School Funds Backend
// @description	The backend for a school's guardian/student enrollment and contribution tracking.
func main() {
	// A .env file is optional, config works with plain environment
	// variables as well
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		if err := os.MkdirAll("data", os.ModePerm); err != nil {
			log.Fatal().Err(err).Msg("could not create data directory")
		}
		dsn = "data/gorm.db"
	}

	if err := models.Connect(dsn); err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	// The URL the API is reachable at, used to construct links
	apiURL, err := url.Parse(os.Getenv("API_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("API_URL is not a valid URL")
	}

	r, teardown, err := router.Config(apiURL)
	defer teardown()
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	router.AttachRoutes(r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
