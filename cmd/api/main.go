package main

import (
	"fmt"
	"os"
)

// @title UniRecords API
// @version 1.0
// @description Student records API: enrolment, grades, invoices and program audits.

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// Set at build time with -ldflags "-X main.Version=..."
var (
	Version   = "0.1.0"
	BuildTime = "dev"
)

const appName = "unirecords"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
