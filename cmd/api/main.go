package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/Agency-Synapse/workflows-project/internal/infra/database"
	"github.com/Agency-Synapse/workflows-project/internal/infra/http/handlers"
	"github.com/Agency-Synapse/workflows-project/internal/infra/http/middleware"
	"github.com/Agency-Synapse/workflows-project/internal/infra/integration/supabase"
	"github.com/Agency-Synapse/workflows-project/internal/infra/mail"
	"github.com/Agency-Synapse/workflows-project/internal/infra/queue"
	"github.com/Agency-Synapse/workflows-project/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	workflowRepo := database.NewWorkflowRepository(db)

	// 2. Storage gateway
	storage := supabase.NewClient(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_SERVICE_KEY"))

	// 3. Queue + mail worker (optional: skipped when RABBITMQ_HOST is unset)
	var (
		rabbitMQ *queue.RabbitMQ
		producer usecase.QueueProducerInterface
	)
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err = queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"),
			os.Getenv("RABBITMQ_PASS"),
			host,
			os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if mailPort == 0 {
			mailPort = 587
		}
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
		)

		worker := queue.NewWorker(rabbitMQ.Ch, mailSender, os.Getenv("APP_BASE_URL"))
		go worker.Start(queue.QueueName)
	}

	// 4. UseCases
	captureLeadUC := usecase.NewCaptureLeadUseCase(leadRepo, producer)
	loadWorkflowsUC := usecase.NewLoadWorkflowsUseCase(leadRepo, workflowRepo, storage)
	syncWorkflowsUC := usecase.NewSyncWorkflowsUseCase(storage, workflowRepo)
	syncMetadataUC := usecase.NewSyncMetadataUseCase(workflowRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(captureLeadUC)
	workflowsHandler := handlers.NewWorkflowsHandler(loadWorkflowsUC)
	syncHandler := handlers.NewSyncHandler(syncWorkflowsUC, syncMetadataUC)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/api/leads", leadHandler.HandleCapture)
	r.Get("/api/workflows", workflowsHandler.HandleList)
	r.Get("/api/workflows/{filename}/download", workflowsHandler.HandleDownload)
	r.Post("/api/sync-workflows", syncHandler.HandleSync)
	r.Post("/api/sync-workflows/meta", syncHandler.HandleSyncMeta)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 Workflows API listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
