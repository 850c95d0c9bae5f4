package main

import (
	"log"
	"os"

	"github.com/MrSnakeDoc/restdemo/internal/app"
)

func main() {
	if err := app.New(os.Args[1:]).Run(); err != nil {
		log.Fatalf("❌ restdemo failed to start: %v", err)
	}
}
