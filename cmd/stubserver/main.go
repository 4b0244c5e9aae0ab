package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/server"
	"github.com/MKhiriev/shelfsync/internal/stubserver"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	address := flag.String("a", defaultAddress(), "address to listen on")
	flag.Parse()

	log := logger.NewLogger("shelfsync-stubserver")

	handler := stubserver.NewHandler(log)
	srv := server.NewServer(*address, handler.Init(), log)
	srv.RunServer()
}

func defaultAddress() string {
	if addr := os.Getenv("STUBSERVER_ADDRESS"); addr != "" {
		return addr
	}
	return "localhost:8080"
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
