package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/joho/godotenv"
	"github.com/radhian/loan-statement-engine/consts"
	"github.com/radhian/loan-statement-engine/handler"
	"github.com/radhian/loan-statement-engine/infra/db/dao"
	"github.com/radhian/loan-statement-engine/infra/db/model"
	"github.com/radhian/loan-statement-engine/infra/events"
	"github.com/radhian/loan-statement-engine/infra/singleflight"
	"github.com/radhian/loan-statement-engine/middlewares"
	statementUsecase "github.com/radhian/loan-statement-engine/usecase/statement"
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		fmt.Printf("\n Cannot connect to database %s", DbName)
		log.Fatal("This is the error:", err)
	} else {
		fmt.Printf("We are connected to the database %s", DbName)
	}

	a.DB.Debug().AutoMigrate(
		&model.Customer{},
		&model.Loan{},
		&model.LoanPayment{},
		&model.LoanInstallment{},
		&model.ExternalCollection{},
		&model.WalletCredit{},
		&model.DisbursementTransaction{},
	) //database migration

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func RegisterStatementRoutes(router *mux.Router, h *handler.StatementHandler) {
	router.HandleFunc("/statement/{customer_id}", h.GetStatement).Methods("GET")
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)

	opts := []statementUsecase.Option{
		statementUsecase.WithFetchTimeout(fetchTimeoutFromEnv()),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		publisher := events.NewKafkaPublisher(strings.Split(brokers, ","), "statement_generated")
		opts = append(opts, statementUsecase.WithPublisher(publisher))
	}

	statementUc := statementUsecase.NewStatementUsecase(dao.NewDaoMethod(a.DB), opts...)
	handler := handler.NewStatementHandler(statementUc, singleflight.New())
	RegisterStatementRoutes(a.Router, handler)

	a.Router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
}

func fetchTimeoutFromEnv() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("FETCH_TIMEOUT_SEC"))
	if err != nil || seconds <= 0 {
		seconds = consts.DefaultFetchTimeoutSec
	}
	return time.Duration(seconds) * time.Second
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	log.Printf("\nServer starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	app := App{}
	app.Initialize(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PASSWORD"))

	app.RunServer()
}
