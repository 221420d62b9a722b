package main

import (
	"log"
	"os"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
