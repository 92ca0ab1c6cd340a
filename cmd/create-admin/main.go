// Command create-admin creates an administrator account.
//
//	go run ./cmd/create-admin -email root@example.com -password 'S3cret!pass'
//
// The password may also come from ADMIN_PASSWORD so it stays out of shell
// history.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"tourist-safety/app"
	"tourist-safety/config"
	"tourist-safety/services"
)

func main() {
	email := flag.String("email", "", "administrator email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "administrator password")
	flag.Parse()

	cfg := config.LoadConfig()
	logger, err := config.NewLogger(cfg.LogLevel, "console", cfg.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	stores, closeStores, err := app.NewStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	defer closeStores()

	admin := services.NewAdminService(stores, nil, logger)
	account, err := admin.CreateAdmin(ctx, *email, *password)
	if err != nil {
		logger.Error("failed to create admin", zap.Error(err))
		closeStores()
		os.Exit(1)
	}

	fmt.Printf("Admin account created: id=%d email=%s\n", account.ID, account.Email)
}
